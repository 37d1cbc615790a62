package port

import (
	"context"

	"edu-dashboard/internal/core/domain"
)

// CourseRepository is the outbound port for course persistence.
// Implementations must enforce slug uniqueness atomically and report
// conflicts as ErrSlugTaken.
type CourseRepository interface {
	// SlugExists reports whether a course already uses slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
	// CreateCourse inserts the course and links it to campaignID when
	// non-zero. ID, CreatedAt and UpdatedAt are set on success.
	CreateCourse(ctx context.Context, course *domain.Course, campaignID int64) error
	// GetCourse returns the course with id, or ErrCourseNotFound.
	GetCourse(ctx context.Context, id int64) (*domain.Course, error)
	// GetCourseBySlug returns the course with slug, or ErrCourseNotFound.
	GetCourseBySlug(ctx context.Context, slug string) (*domain.Course, error)
	// ListCoursesByCreator returns courses created by userID, newest first.
	ListCoursesByCreator(ctx context.Context, userID string) ([]domain.Course, error)
}
