package port

import (
	"context"

	"edu-dashboard/internal/core/domain"
)

// CourseUseCase is the command and query interface behind the course
// wizard.
type CourseUseCase interface {
	// CheckSlugUniqueness reports whether no course uses slug yet.
	CheckSlugUniqueness(ctx context.Context, slug string) (bool, error)
	// SubmitCourse validates and persists a new course created by viewer.
	// It returns ErrInvalidCourse wrapped with details when the course
	// breaks a submit rule and ErrSlugTaken on a slug conflict.
	SubmitCourse(ctx context.Context, viewer domain.Viewer, course domain.Course) (*domain.Course, error)
	// CloneCourse copies one of the viewer's courses as a template for a
	// new one.
	CloneCourse(ctx context.Context, viewer domain.Viewer, courseID int64) (*domain.Course, error)
	// CloneableCourses lists the courses viewer may clone.
	CloneableCourses(ctx context.Context, viewer domain.Viewer) ([]domain.CourseSummary, error)
	// FetchCampaign returns the campaign with slug, or ErrCampaignNotFound.
	FetchCampaign(ctx context.Context, slug string) (*domain.Campaign, error)
	// GetCourse returns the course with slug, or ErrCourseNotFound.
	// Private courses are only returned to their creator.
	GetCourse(ctx context.Context, viewer domain.Viewer, slug string) (*domain.Course, error)
}
