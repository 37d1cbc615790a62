// Package wizard implements the course creation wizard as an explicit
// state machine. Transition is pure: it returns the next state and the
// effects the caller must execute, and feeds their outcome back as events.
package wizard

import (
	"maps"
	"slices"

	"edu-dashboard/internal/core/domain"
)

// Panel is the part of the wizard currently shown.
type Panel string

const (
	PanelLoading      Panel = "loading"
	PanelNewOrClone   Panel = "new_or_clone"
	PanelCourseForm   Panel = "course_form"
	PanelWizardForm   Panel = "wizard_form"
	PanelCloneChooser Panel = "clone_chooser"
)

// Phase tracks submission progress. Any phase other than PhaseEditing
// blocks a new submission.
type Phase string

const (
	PhaseEditing      Phase = "editing"
	PhaseCheckingSlug Phase = "checking_slug"
	PhaseSaving       Phase = "saving"
	PhaseCloning      Phase = "cloning"
	PhaseRedirected   Phase = "redirected"
)

// State is the complete wizard state.
type State struct {
	Panel          Panel
	Phase          Phase
	CampaignSlug   string
	Course         domain.Course
	Validations    domain.Validations
	Cloneable      []domain.CourseSummary
	ShowEventDates bool
	Notice         string
	Redirect       string

	// Rejected holds raw input that could not be applied to Course,
	// keyed by field. Only an accepted value for the same key clears it.
	Rejected map[string]string
}

// NewState returns the state of a wizard that has not started yet.
func NewState() State {
	return State{
		Panel:       PanelLoading,
		Phase:       PhaseEditing,
		Validations: domain.NewValidations(),
	}
}

// Submitting reports whether a submission or clone is in flight.
func (s State) Submitting() bool {
	return s.Phase == PhaseCheckingSlug || s.Phase == PhaseSaving || s.Phase == PhaseCloning
}

// Done reports whether the wizard reached its terminal state.
func (s State) Done() bool {
	return s.Phase == PhaseRedirected
}

// clone copies the mutable parts of s so transitions never alias the
// caller's state.
func (s State) clone() State {
	s.Validations = s.Validations.Clone()
	s.Rejected = maps.Clone(s.Rejected)
	s.Cloneable = slices.Clone(s.Cloneable)
	return s
}
