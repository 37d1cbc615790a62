package usecase

import (
	"context"
	"errors"
	"log/slog"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
	"edu-dashboard/internal/core/wizard"
)

// WizardUseCase implements port.WizardUseCase. It keeps sessions in a
// port.WizardStore and executes the effects of each transition through
// a port.CourseUseCase, feeding their outcomes back into the machine.
type WizardUseCase struct {
	machine *wizard.Machine
	courses port.CourseUseCase
	store   port.WizardStore
	tr      wizard.Translator
	logger  *slog.Logger
}

// NewWizardUseCase creates the session driver.
func NewWizardUseCase(machine *wizard.Machine, courses port.CourseUseCase, store port.WizardStore, tr wizard.Translator, logger *slog.Logger) *WizardUseCase {
	return &WizardUseCase{machine: machine, courses: courses, store: store, tr: tr, logger: logger}
}

// Start opens a session and loads the data the first panel depends on.
func (u *WizardUseCase) Start(ctx context.Context, viewer domain.Viewer, campaignSlug string) (*port.WizardSession, error) {
	if viewer.Anonymous() {
		return nil, port.ErrUnauthenticated
	}
	state := u.drive(ctx, viewer, wizard.NewState(), wizard.Started{CampaignSlug: campaignSlug})
	id, err := u.store.Create(ctx, viewer.UserID, state)
	if err != nil {
		return nil, err
	}
	return &port.WizardSession{ID: id, View: u.machine.View(state)}, nil
}

// Dispatch applies a user event. Sessions of other users are reported
// as not found.
func (u *WizardUseCase) Dispatch(ctx context.Context, viewer domain.Viewer, id string, ev wizard.Event) (*port.WizardSession, error) {
	if viewer.Anonymous() {
		return nil, port.ErrUnauthenticated
	}
	if !wizard.UserEvent(ev) {
		return nil, port.ErrInvalidEvent
	}
	var view wizard.View
	err := u.store.Update(ctx, id, func(owner string, state *wizard.State) error {
		if owner != viewer.UserID {
			return port.ErrSessionNotFound
		}
		*state = u.drive(ctx, viewer, *state, ev)
		view = u.machine.View(*state)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &port.WizardSession{ID: id, View: view}, nil
}

// Get returns the session without changing it.
func (u *WizardUseCase) Get(ctx context.Context, viewer domain.Viewer, id string) (*port.WizardSession, error) {
	if viewer.Anonymous() {
		return nil, port.ErrUnauthenticated
	}
	var view wizard.View
	err := u.store.Update(ctx, id, func(owner string, state *wizard.State) error {
		if owner != viewer.UserID {
			return port.ErrSessionNotFound
		}
		view = u.machine.View(*state)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &port.WizardSession{ID: id, View: view}, nil
}

// drive applies ev and every event produced by executing effects until
// the machine settles.
func (u *WizardUseCase) drive(ctx context.Context, viewer domain.Viewer, state wizard.State, ev wizard.Event) wizard.State {
	queue := []wizard.Event{ev}
	for len(queue) > 0 {
		var effects []wizard.Effect
		state, effects = u.machine.Transition(state, queue[0])
		queue = queue[1:]
		for _, eff := range effects {
			if next := u.execute(ctx, viewer, eff); next != nil {
				queue = append(queue, next)
			}
		}
	}
	return state
}

func (u *WizardUseCase) execute(ctx context.Context, viewer domain.Viewer, eff wizard.Effect) wizard.Event {
	switch e := eff.(type) {
	case wizard.FetchCampaign:
		camp, err := u.courses.FetchCampaign(ctx, e.Slug)
		if err != nil && !errors.Is(err, port.ErrCampaignNotFound) {
			u.logger.Error("fetch campaign", slog.String("slug", e.Slug), slog.Any("error", err))
		}
		return wizard.CampaignLoaded{Campaign: camp}
	case wizard.LoadCloneable:
		courses, err := u.courses.CloneableCourses(ctx, viewer)
		if err != nil {
			u.logger.Error("load cloneable courses", slog.String("user_id", viewer.UserID), slog.Any("error", err))
		}
		return wizard.CloneableLoaded{Courses: courses}
	case wizard.CheckSlug:
		unique, err := u.courses.CheckSlugUniqueness(ctx, e.Slug)
		if err != nil {
			u.logger.Error("check course slug", slog.String("slug", e.Slug), slog.Any("error", err))
			return wizard.SlugCheckFailed{Message: u.failure(err)}
		}
		return wizard.SlugChecked{Slug: e.Slug, Unique: unique}
	case wizard.SubmitCourse:
		course, err := u.courses.SubmitCourse(ctx, viewer, e.Course)
		if err != nil {
			u.logger.Warn("submit course", slog.String("user_id", viewer.UserID), slog.Any("error", err))
			return wizard.SaveFailed{Message: u.failure(err)}
		}
		return wizard.SaveSucceeded{Course: *course}
	case wizard.CloneCourse:
		course, err := u.courses.CloneCourse(ctx, viewer, e.CourseID)
		if err != nil {
			u.logger.Warn("clone course", slog.Int64("course_id", e.CourseID), slog.Any("error", err))
			return wizard.CloneFailed{Message: u.failure(err)}
		}
		return wizard.CloneSucceeded{Course: *course}
	case wizard.Navigate:
		u.logger.Info("course wizard finished", slog.String("user_id", viewer.UserID), slog.String("redirect", e.URL))
	}
	return nil
}

// failure turns an effect error into a message for the user. Internal
// errors are not exposed.
func (u *WizardUseCase) failure(err error) string {
	switch {
	case errors.Is(err, port.ErrSlugTaken):
		return u.tr.T(domain.MsgAlreadyExists)
	case errors.Is(err, port.ErrInvalidCourse):
		return u.tr.T(domain.MsgInvalidCourse)
	case errors.Is(err, port.ErrForbidden), errors.Is(err, port.ErrCourseNotFound):
		return "That course cannot be used."
	default:
		return "Something went wrong. Please try again."
	}
}
