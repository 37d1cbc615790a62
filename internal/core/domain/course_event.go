package domain

import "time"

// CourseEventKind names a course lifecycle event.
type CourseEventKind string

const (
	CourseCreated CourseEventKind = "course.created"
	CourseCloned  CourseEventKind = "course.cloned"
)

// CourseEvent is published after a course is persisted.
type CourseEvent struct {
	ID         string          `json:"id"`
	Kind       CourseEventKind `json:"kind"`
	CourseID   int64           `json:"course_id"`
	CourseSlug string          `json:"course_slug"`
	SourceID   int64           `json:"source_id,omitempty"`
	UserID     string          `json:"user_id"`
	Campaign   string          `json:"campaign,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
