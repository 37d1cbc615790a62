package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"edu-dashboard/internal/adapter/memory"
	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
	"edu-dashboard/internal/core/port/mocks"
	"edu-dashboard/internal/core/wizard"
)

type keyTranslator struct{}

func (keyTranslator) T(key string) string { return key }

func newWizard(t *testing.T) (*WizardUseCase, *mocks.MockCourseUseCase) {
	courses := mocks.NewMockCourseUseCase(t)
	machine := wizard.NewMachine(wizard.Options{DefaultType: domain.ClassroomProgram}, keyTranslator{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWizardUseCase(machine, courses, memory.NewWizardStore(time.Hour), keyTranslator{}, logger), courses
}

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func classroomForm() []wizard.Event {
	return []wizard.Event{
		wizard.ChooseProgram{Type: domain.ClassroomProgram},
		wizard.FieldUpdated{Key: domain.FieldTitle, Value: "Intro to Biology"},
		wizard.FieldUpdated{Key: domain.FieldSchool, Value: "State University"},
		wizard.FieldUpdated{Key: domain.FieldTerm, Value: "Spring 2025"},
		wizard.FieldUpdated{Key: domain.FieldDescription, Value: "Writing articles"},
		wizard.FieldUpdated{Key: domain.FieldExpectedStudents, Value: "25"},
		wizard.DateUpdated{Key: domain.FieldStart, Value: at(2025, 1, 10)},
		wizard.DateUpdated{Key: domain.FieldEnd, Value: at(2025, 5, 1)},
	}
}

func dispatchAll(t *testing.T, svc *WizardUseCase, viewer domain.Viewer, id string, events ...wizard.Event) *port.WizardSession {
	t.Helper()
	var sess *port.WizardSession
	for _, ev := range events {
		var err error
		sess, err = svc.Dispatch(context.Background(), viewer, id, ev)
		require.NoError(t, err)
	}
	return sess
}

const createdSlug = "State_University/Intro_to_Biology_(Spring_2025)"

func TestWizardCreatesCourse(t *testing.T) {
	svc, courses := newWizard(t)
	courses.EXPECT().CloneableCourses(mock.Anything, instructor).Return(nil, nil)
	courses.EXPECT().CheckSlugUniqueness(mock.Anything, createdSlug).Return(true, nil)
	courses.EXPECT().SubmitCourse(mock.Anything, instructor, mock.AnythingOfType("domain.Course")).
		RunAndReturn(func(_ context.Context, _ domain.Viewer, c domain.Course) (*domain.Course, error) {
			c.ID = 1
			c.Slug = domain.GenerateSlug(c)
			return &c, nil
		})

	sess, err := svc.Start(context.Background(), instructor, "")
	require.NoError(t, err)
	assert.Equal(t, wizard.PanelWizardForm, sess.View.Panel)

	sess = dispatchAll(t, svc, instructor, sess.ID, classroomForm()...)
	assert.Equal(t, createdSlug, sess.View.TempID)

	sess = dispatchAll(t, svc, instructor, sess.ID, wizard.SubmitRequested{})
	assert.Equal(t, wizard.PhaseRedirected, sess.View.Phase)
	assert.Equal(t, "/courses/"+createdSlug+"/timeline/wizard", sess.View.Redirect)

	// The terminal state ignores further input.
	sess = dispatchAll(t, svc, instructor, sess.ID, wizard.SubmitRequested{})
	assert.Equal(t, wizard.PhaseRedirected, sess.View.Phase)
}

func TestWizardRetriesAfterSaveFailure(t *testing.T) {
	svc, courses := newWizard(t)
	courses.EXPECT().CloneableCourses(mock.Anything, instructor).Return(nil, nil)
	courses.EXPECT().CheckSlugUniqueness(mock.Anything, createdSlug).Return(true, nil).Times(2)
	courses.EXPECT().SubmitCourse(mock.Anything, instructor, mock.Anything).
		Return(nil, errors.New("db down")).Once()
	courses.EXPECT().SubmitCourse(mock.Anything, instructor, mock.Anything).
		Return(&domain.Course{ID: 9, Slug: createdSlug, Type: domain.ClassroomProgram}, nil).Once()

	sess, err := svc.Start(context.Background(), instructor, "")
	require.NoError(t, err)
	dispatchAll(t, svc, instructor, sess.ID, classroomForm()...)

	sess = dispatchAll(t, svc, instructor, sess.ID, wizard.SubmitRequested{})
	assert.Equal(t, wizard.PhaseEditing, sess.View.Phase)
	assert.NotEmpty(t, sess.View.Notice)

	sess = dispatchAll(t, svc, instructor, sess.ID, wizard.SubmitRequested{})
	assert.Equal(t, wizard.PhaseRedirected, sess.View.Phase)
}

func TestWizardInvalidCourseNoticeIsTranslated(t *testing.T) {
	svc, courses := newWizard(t)
	courses.EXPECT().CloneableCourses(mock.Anything, instructor).Return(nil, nil)
	courses.EXPECT().CheckSlugUniqueness(mock.Anything, createdSlug).Return(true, nil)
	courses.EXPECT().SubmitCourse(mock.Anything, instructor, mock.Anything).
		Return(nil, fmt.Errorf("%w: end: %s", port.ErrInvalidCourse, domain.MsgFieldInvalidDateTime))

	sess, err := svc.Start(context.Background(), instructor, "")
	require.NoError(t, err)
	dispatchAll(t, svc, instructor, sess.ID, classroomForm()...)

	sess = dispatchAll(t, svc, instructor, sess.ID, wizard.SubmitRequested{})
	assert.Equal(t, wizard.PhaseEditing, sess.View.Phase)
	assert.Equal(t, domain.MsgInvalidCourse, sess.View.Notice)
	assert.NotContains(t, sess.View.Notice, domain.MsgFieldInvalidDateTime)
}

func TestWizardSlugTaken(t *testing.T) {
	svc, courses := newWizard(t)
	courses.EXPECT().CloneableCourses(mock.Anything, instructor).Return(nil, nil)
	courses.EXPECT().CheckSlugUniqueness(mock.Anything, createdSlug).Return(false, nil)

	sess, err := svc.Start(context.Background(), instructor, "")
	require.NoError(t, err)
	dispatchAll(t, svc, instructor, sess.ID, classroomForm()...)

	sess = dispatchAll(t, svc, instructor, sess.ID, wizard.SubmitRequested{})
	assert.Equal(t, wizard.PhaseEditing, sess.View.Phase)
	assert.False(t, sess.View.Validations[domain.FieldExists].Valid)
	assert.Equal(t, domain.MsgAlreadyExists, sess.View.FirstErrorMessage)
}

func TestWizardStartFromCampaign(t *testing.T) {
	svc, courses := newWizard(t)
	courses.EXPECT().FetchCampaign(mock.Anything, "spring").
		Return(&domain.Campaign{Slug: "spring", Title: "Spring 2025"}, nil)
	courses.EXPECT().CloneableCourses(mock.Anything, instructor).
		Return([]domain.CourseSummary{{ID: 1}}, nil)

	sess, err := svc.Start(context.Background(), instructor, "spring")
	require.NoError(t, err)
	assert.Equal(t, wizard.PanelCourseForm, sess.View.Panel)
	assert.Equal(t, "spring", sess.View.Course.InitialCampaignSlug)
	assert.Equal(t, "Spring 2025", sess.View.Course.InitialCampaignTitle)
}

func TestWizardClone(t *testing.T) {
	svc, courses := newWizard(t)
	courses.EXPECT().CloneableCourses(mock.Anything, instructor).
		Return([]domain.CourseSummary{{ID: 3, Title: "Old", Slug: "s/old"}}, nil)
	courses.EXPECT().CloneCourse(mock.Anything, instructor, int64(3)).
		Return(&domain.Course{ID: 4, Slug: "s/old_(New_term)"}, nil)

	sess, err := svc.Start(context.Background(), instructor, "")
	require.NoError(t, err)
	assert.Equal(t, wizard.PanelNewOrClone, sess.View.Panel)

	sess = dispatchAll(t, svc, instructor, sess.ID, wizard.ShowCloneChooser{}, wizard.CloneSelected{CourseID: 3})
	assert.Equal(t, wizard.PhaseRedirected, sess.View.Phase)
	assert.Equal(t, "/courses/s/old_(New_term)", sess.View.Redirect)
}

func TestWizardAccessRules(t *testing.T) {
	svc, courses := newWizard(t)
	courses.EXPECT().CloneableCourses(mock.Anything, instructor).Return(nil, nil)

	_, err := svc.Start(context.Background(), domain.Viewer{}, "")
	assert.ErrorIs(t, err, port.ErrUnauthenticated)

	sess, err := svc.Start(context.Background(), instructor, "")
	require.NoError(t, err)

	_, err = svc.Dispatch(context.Background(), instructor, sess.ID, wizard.SaveSucceeded{})
	assert.ErrorIs(t, err, port.ErrInvalidEvent)

	other := domain.Viewer{UserID: "u2", Role: domain.RoleInstructor}
	_, err = svc.Get(context.Background(), other, sess.ID)
	assert.ErrorIs(t, err, port.ErrSessionNotFound)

	_, err = svc.Dispatch(context.Background(), other, sess.ID, wizard.ChooseNew{})
	assert.ErrorIs(t, err, port.ErrSessionNotFound)

	got, err := svc.Get(context.Background(), instructor, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
}
