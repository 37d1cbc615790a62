package port

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrSlugTaken        = errors.New("course slug already taken")
	ErrInvalidCourse    = errors.New("invalid course")
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthenticated  = errors.New("authentication required")
)

// ErrInvalidEvent is returned when a wizard event cannot be sent by users.
var ErrInvalidEvent = errors.New("invalid wizard event")
