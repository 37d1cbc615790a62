package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
	"edu-dashboard/internal/core/port/mocks"
)

var courseNow = time.Date(2025, 5, 10, 15, 30, 0, 0, time.UTC)

type courseFixture struct {
	svc       *CourseUseCase
	courses   *mocks.MockCourseRepository
	campaigns *mocks.MockCampaignRepository
	events    *mocks.MockEventPublisher
}

func newCourseFixture(t *testing.T) courseFixture {
	f := courseFixture{
		courses:   mocks.NewMockCourseRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		events:    mocks.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewCourseUseCase(f.courses, f.campaigns, f.events, domain.ClassroomProgram, logger)
	f.svc.now = func() time.Time { return courseNow }
	return f
}

func validCourse() domain.Course {
	return domain.Course{
		Title:            " Intro to Biology ",
		School:           "State University",
		Term:             "Spring 2025",
		Description:      "Students write articles.",
		ExpectedStudents: 20,
		Start:            time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		End:              time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

var instructor = domain.Viewer{UserID: "u1", Role: domain.RoleInstructor}

func TestSubmitCourse(t *testing.T) {
	f := newCourseFixture(t)
	course := validCourse()
	course.InitialCampaignSlug = "spring"

	f.campaigns.EXPECT().GetCampaignBySlug(mock.Anything, "spring").
		Return(&domain.Campaign{ID: 3, Slug: "spring", Title: "Spring"}, nil)
	f.courses.EXPECT().CreateCourse(mock.Anything, mock.AnythingOfType("*domain.Course"), int64(3)).
		Run(func(_ context.Context, c *domain.Course, _ int64) { c.ID = 42 }).
		Return(nil)
	f.events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(ev domain.CourseEvent) bool {
		return ev.Kind == domain.CourseCreated && ev.CourseID == 42 && ev.Campaign == "spring" && ev.ID != ""
	})).Return(nil)

	got, err := f.svc.SubmitCourse(context.Background(), instructor, course)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "State_University/Intro_to_Biology_(Spring_2025)", got.Slug)
	assert.Equal(t, "Intro to Biology", got.Title)
	assert.Equal(t, "u1", got.CreatorID)
	assert.Equal(t, domain.ClassroomProgram, got.Type)
	assert.Equal(t, "Spring", got.InitialCampaignTitle)
}

func TestSubmitCourseRejectsInvalid(t *testing.T) {
	f := newCourseFixture(t)
	course := validCourse()
	course.ExpectedStudents = 0
	course.End = course.Start.Add(-time.Hour)

	_, err := f.svc.SubmitCourse(context.Background(), instructor, course)
	require.ErrorIs(t, err, port.ErrInvalidCourse)
	assert.Contains(t, err.Error(), "expected_students")
	assert.Contains(t, err.Error(), "end")
}

func TestSubmitCourseRequiresViewer(t *testing.T) {
	f := newCourseFixture(t)
	_, err := f.svc.SubmitCourse(context.Background(), domain.Viewer{}, validCourse())
	assert.ErrorIs(t, err, port.ErrUnauthenticated)
}

func TestSubmitCourseUnknownCampaign(t *testing.T) {
	f := newCourseFixture(t)
	course := validCourse()
	course.InitialCampaignSlug = "gone"

	f.campaigns.EXPECT().GetCampaignBySlug(mock.Anything, "gone").Return(nil, port.ErrCampaignNotFound)
	f.courses.EXPECT().CreateCourse(mock.Anything, mock.AnythingOfType("*domain.Course"), int64(0)).Return(nil)
	f.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	got, err := f.svc.SubmitCourse(context.Background(), instructor, course)
	require.NoError(t, err)
	assert.Empty(t, got.InitialCampaignSlug)
}

func TestSubmitCourseSlugTaken(t *testing.T) {
	f := newCourseFixture(t)
	f.courses.EXPECT().CreateCourse(mock.Anything, mock.Anything, int64(0)).Return(port.ErrSlugTaken)

	_, err := f.svc.SubmitCourse(context.Background(), instructor, validCourse())
	assert.ErrorIs(t, err, port.ErrSlugTaken)
}

func TestCheckSlugUniqueness(t *testing.T) {
	f := newCourseFixture(t)
	f.courses.EXPECT().SlugExists(mock.Anything, "a/b").Return(true, nil)
	f.courses.EXPECT().SlugExists(mock.Anything, "a/c").Return(false, nil)

	unique, err := f.svc.CheckSlugUniqueness(context.Background(), "a/b")
	require.NoError(t, err)
	assert.False(t, unique)

	unique, err = f.svc.CheckSlugUniqueness(context.Background(), "a/c")
	require.NoError(t, err)
	assert.True(t, unique)

	_, err = f.svc.CheckSlugUniqueness(context.Background(), " ")
	assert.ErrorIs(t, err, port.ErrInvalidCourse)
}

func TestCloneCourse(t *testing.T) {
	f := newCourseFixture(t)
	src := validCourse()
	src.ID = 5
	src.CreatorID = "u1"
	tl := src.Start.AddDate(0, 0, 7)
	src.TimelineStart = &tl

	f.courses.EXPECT().GetCourse(mock.Anything, int64(5)).Return(&src, nil)
	var tried []string
	f.courses.EXPECT().CreateCourse(mock.Anything, mock.AnythingOfType("*domain.Course"), int64(0)).
		RunAndReturn(func(_ context.Context, c *domain.Course, _ int64) error {
			tried = append(tried, c.Term)
			if len(tried) == 1 {
				return port.ErrSlugTaken
			}
			c.ID = 6
			return nil
		}).Times(2)
	f.events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(ev domain.CourseEvent) bool {
		return ev.Kind == domain.CourseCloned && ev.SourceID == 5 && ev.CourseID == 6
	})).Return(nil)

	got, err := f.svc.CloneCourse(context.Background(), instructor, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"New term", "New term 2"}, tried)
	assert.Equal(t, int64(6), got.ID)
	assert.Equal(t, "State_University/Intro_to_Biology_(New_term_2)", got.Slug)
	assert.Equal(t, time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC), got.Start)
	assert.Equal(t, time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC), got.End)
	assert.Nil(t, got.TimelineStart)
}

func TestCloneCourseForbidden(t *testing.T) {
	f := newCourseFixture(t)
	src := validCourse()
	src.CreatorID = "someone-else"
	f.courses.EXPECT().GetCourse(mock.Anything, int64(5)).Return(&src, nil)

	_, err := f.svc.CloneCourse(context.Background(), instructor, 5)
	assert.ErrorIs(t, err, port.ErrForbidden)
}

func TestCloneableCourses(t *testing.T) {
	f := newCourseFixture(t)
	f.courses.EXPECT().ListCoursesByCreator(mock.Anything, "u1").Return([]domain.Course{
		{ID: 1, Title: "One", Slug: "s/one"},
	}, nil)

	got, err := f.svc.CloneableCourses(context.Background(), instructor)
	require.NoError(t, err)
	assert.Equal(t, []domain.CourseSummary{{ID: 1, Title: "One", Slug: "s/one"}}, got)

	got, err = f.svc.CloneableCourses(context.Background(), domain.Viewer{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetCourseHidesPrivate(t *testing.T) {
	f := newCourseFixture(t)
	private := &domain.Course{ID: 1, Slug: "s/p", Private: true, CreatorID: "u1"}
	f.courses.EXPECT().GetCourseBySlug(mock.Anything, "s/p").Return(private, nil)

	got, err := f.svc.GetCourse(context.Background(), instructor, "s/p")
	require.NoError(t, err)
	assert.Equal(t, private, got)

	_, err = f.svc.GetCourse(context.Background(), domain.Viewer{UserID: "u2"}, "s/p")
	assert.ErrorIs(t, err, port.ErrCourseNotFound)
}
