package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
)

const (
	cloneTerm = "New term"
	// maxCloneAttempts bounds the numbered terms tried when the cloned
	// slug is already taken.
	maxCloneAttempts = 5
	// cloneDuration is the placeholder length of a cloned course.
	cloneDuration = 4 // months
)

// CourseUseCase implements port.CourseUseCase. It validates submissions
// against the domain rules, persists them and publishes course events.
type CourseUseCase struct {
	courses     port.CourseRepository
	campaigns   port.CampaignRepository
	events      port.EventPublisher
	defaultType domain.ProgramType
	logger      *slog.Logger
	now         func() time.Time
}

// NewCourseUseCase wires the course commands. defaultType applies to
// submissions that do not name a program type.
func NewCourseUseCase(courses port.CourseRepository, campaigns port.CampaignRepository, events port.EventPublisher, defaultType domain.ProgramType, logger *slog.Logger) *CourseUseCase {
	if defaultType == "" {
		defaultType = domain.ClassroomProgram
	}
	return &CourseUseCase{
		courses:     courses,
		campaigns:   campaigns,
		events:      events,
		defaultType: defaultType,
		logger:      logger,
		now:         time.Now,
	}
}

// CheckSlugUniqueness reports whether slug is still free.
func (u *CourseUseCase) CheckSlugUniqueness(ctx context.Context, slug string) (bool, error) {
	if strings.TrimSpace(slug) == "" {
		return false, fmt.Errorf("%w: empty slug", port.ErrInvalidCourse)
	}
	exists, err := u.courses.SlugExists(ctx, slug)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// SubmitCourse validates course, derives its slug and stores it with the
// viewer as creator. The course is linked to its initial campaign when
// that campaign exists.
func (u *CourseUseCase) SubmitCourse(ctx context.Context, viewer domain.Viewer, course domain.Course) (*domain.Course, error) {
	if viewer.Anonymous() {
		return nil, port.ErrUnauthenticated
	}
	course = domain.CleanupSlugComponents(course)
	if course.Type == "" {
		course.Type = u.defaultType
	}
	if !course.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown program type %q", port.ErrInvalidCourse, course.Type)
	}
	if errs := domain.SubmitErrors(course, course.Type); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", port.ErrInvalidCourse, describe(errs))
	}

	course.ID = 0
	course.Slug = domain.GenerateSlug(course)
	course.CreatorID = viewer.UserID

	var campaignID int64
	if course.InitialCampaignSlug != "" {
		camp, err := u.campaigns.GetCampaignBySlug(ctx, course.InitialCampaignSlug)
		switch {
		case errors.Is(err, port.ErrCampaignNotFound):
			course.InitialCampaignSlug = ""
			course.InitialCampaignTitle = ""
		case err != nil:
			return nil, err
		default:
			campaignID = camp.ID
			course.InitialCampaignTitle = camp.Title
		}
	}

	if err := u.courses.CreateCourse(ctx, &course, campaignID); err != nil {
		return nil, err
	}
	u.publish(ctx, domain.CourseEvent{
		Kind:       domain.CourseCreated,
		CourseID:   course.ID,
		CourseSlug: course.Slug,
		UserID:     viewer.UserID,
		Campaign:   course.InitialCampaignSlug,
	})
	return &course, nil
}

// CloneCourse copies one of the viewer's courses. The copy gets a
// placeholder term and dates and no timeline, so the slug differs from
// the source; numbered terms are tried when it is taken.
func (u *CourseUseCase) CloneCourse(ctx context.Context, viewer domain.Viewer, courseID int64) (*domain.Course, error) {
	if viewer.Anonymous() {
		return nil, port.ErrUnauthenticated
	}
	src, err := u.courses.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if src.CreatorID != viewer.UserID {
		return nil, port.ErrForbidden
	}

	start := u.now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	clone := *src
	clone.ID = 0
	clone.CreatorID = viewer.UserID
	clone.Start = start
	clone.End = start.AddDate(0, cloneDuration, 0)
	clone.TimelineStart = nil
	clone.TimelineEnd = nil
	clone.InitialCampaignSlug = ""
	clone.InitialCampaignTitle = ""

	for attempt := 1; attempt <= maxCloneAttempts; attempt++ {
		clone.Term = cloneTerm
		if attempt > 1 {
			clone.Term = fmt.Sprintf("%s %d", cloneTerm, attempt)
		}
		clone.Slug = domain.GenerateSlug(clone)
		err = u.courses.CreateCourse(ctx, &clone, 0)
		if errors.Is(err, port.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		u.publish(ctx, domain.CourseEvent{
			Kind:       domain.CourseCloned,
			CourseID:   clone.ID,
			CourseSlug: clone.Slug,
			SourceID:   src.ID,
			UserID:     viewer.UserID,
		})
		return &clone, nil
	}
	return nil, port.ErrSlugTaken
}

// CloneableCourses lists the courses created by viewer.
func (u *CourseUseCase) CloneableCourses(ctx context.Context, viewer domain.Viewer) ([]domain.CourseSummary, error) {
	if viewer.Anonymous() {
		return []domain.CourseSummary{}, nil
	}
	courses, err := u.courses.ListCoursesByCreator(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Summary())
	}
	return out, nil
}

// FetchCampaign returns the campaign with slug.
func (u *CourseUseCase) FetchCampaign(ctx context.Context, slug string) (*domain.Campaign, error) {
	return u.campaigns.GetCampaignBySlug(ctx, slug)
}

// GetCourse returns the course with slug. Private courses of other
// users are reported as not found.
func (u *CourseUseCase) GetCourse(ctx context.Context, viewer domain.Viewer, slug string) (*domain.Course, error) {
	course, err := u.courses.GetCourseBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if course.Private && (viewer.Anonymous() || course.CreatorID != viewer.UserID) {
		return nil, port.ErrCourseNotFound
	}
	return course, nil
}

// publish sends ev without failing the caller; the course is already
// stored when events go out.
func (u *CourseUseCase) publish(ctx context.Context, ev domain.CourseEvent) {
	ev.ID = uuid.NewString()
	ev.OccurredAt = u.now().UTC()
	if err := u.events.Publish(ctx, ev); err != nil {
		u.logger.Error("publish course event",
			slog.String("kind", string(ev.Kind)),
			slog.Int64("course_id", ev.CourseID),
			slog.Any("error", err))
	}
}

// describe renders field errors in a stable order.
func describe(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+errs[k])
	}
	return strings.Join(parts, ", ")
}
