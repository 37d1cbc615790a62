package wizard

import (
	"errors"
	"slices"

	"edu-dashboard/internal/core/domain"
)

// Translator resolves message keys for display.
type Translator interface {
	T(key string) string
}

// Options configure a Machine for a deployment.
type Options struct {
	// DefaultType applies to courses whose type has not been chosen.
	DefaultType domain.ProgramType
	// SkipProgramChooser opens the course form directly instead of the
	// program type chooser when creating a new course.
	SkipProgramChooser bool
}

// Machine holds the configuration of the transition function.
type Machine struct {
	opts Options
	tr   Translator
}

// NewMachine returns a Machine using tr for validation messages.
func NewMachine(opts Options, tr Translator) *Machine {
	if opts.DefaultType == "" {
		opts.DefaultType = domain.ClassroomProgram
	}
	return &Machine{opts: opts, tr: tr}
}

// Transition applies ev to s. Events that do not apply to the current
// panel or phase leave the state unchanged. The terminal state ignores
// every event.
func (m *Machine) Transition(s State, ev Event) (State, []Effect) {
	if s.Done() {
		return s, nil
	}
	s = s.clone()

	switch e := ev.(type) {
	case Started:
		return m.start(e)
	case CloneableLoaded:
		s.Cloneable = slices.Clone(e.Courses)
		if s.Panel == PanelLoading {
			s.Panel = m.entryPanel(s)
		}
	case CampaignLoaded:
		if e.Campaign != nil {
			s.Course.InitialCampaignSlug = e.Campaign.Slug
			s.Course.InitialCampaignTitle = e.Campaign.Title
		}
	case ChooseNew:
		if s.Panel == PanelNewOrClone {
			s.Panel = m.newCoursePanel()
		}
	case ShowCloneChooser:
		if s.Panel == PanelNewOrClone && s.CampaignSlug == "" && len(s.Cloneable) > 0 {
			s.Panel = PanelCloneChooser
		}
	case CancelClone:
		if s.Panel == PanelCloneChooser && s.Phase == PhaseEditing {
			s.Panel = PanelNewOrClone
		}
	case ChooseProgram:
		if s.Panel == PanelWizardForm && e.Type.Valid() {
			s.Course.Type = e.Type
			s.Panel = PanelCourseForm
			m.revalidate(&s, false)
		}
	case FieldUpdated:
		if m.editable(s) {
			m.updateField(&s, e)
		}
	case DateUpdated:
		if m.editable(s) {
			s.Course = domain.UpdateCourseDates(s.Course, e.Key, e.Value)
			m.validateKey(&s, domain.FieldStart, true)
			m.validateKey(&s, domain.FieldEnd, true)
		}
	case ToggleEventDates:
		if m.editable(s) {
			s.ShowEventDates = !s.ShowEventDates
		}
	case SubmitRequested:
		if m.editable(s) {
			return m.submit(s)
		}
	case SlugChecked:
		if s.Phase == PhaseCheckingSlug && e.Slug == domain.GenerateSlug(s.Course) {
			return m.slugChecked(s, e.Unique)
		}
	case SlugCheckFailed:
		if s.Phase == PhaseCheckingSlug {
			s.Phase = PhaseEditing
			s.Validations.SetValid(domain.FieldExists)
			s.Notice = e.Message
		}
	case SaveSucceeded:
		if s.Phase == PhaseSaving {
			s.Course = e.Course
			wizard := s.Course.EffectiveType(m.opts.DefaultType).IsClassroom()
			return m.redirect(s, domain.CoursePath(e.Course.Slug, wizard))
		}
	case SaveFailed:
		if s.Phase == PhaseSaving {
			s.Phase = PhaseEditing
			s.Notice = e.Message
		}
	case CloneSelected:
		if s.Panel == PanelCloneChooser && s.Phase == PhaseEditing && m.cloneable(s, e.CourseID) {
			s.Phase = PhaseCloning
			s.Notice = ""
			return s, []Effect{CloneCourse{CourseID: e.CourseID}}
		}
	case CloneSucceeded:
		if s.Phase == PhaseCloning {
			s.Course = e.Course
			return m.redirect(s, domain.CoursePath(e.Course.Slug, false))
		}
	case CloneFailed:
		if s.Phase == PhaseCloning {
			s.Phase = PhaseEditing
			s.Notice = e.Message
		}
	}
	return s, nil
}

func (m *Machine) start(e Started) (State, []Effect) {
	s := NewState()
	s.CampaignSlug = e.CampaignSlug
	effects := make([]Effect, 0, 2)
	if e.CampaignSlug != "" {
		effects = append(effects, FetchCampaign{Slug: e.CampaignSlug})
	}
	return s, append(effects, LoadCloneable{})
}

// entryPanel picks the first panel once cloneable courses are known. A
// wizard opened from a campaign never offers cloning.
func (m *Machine) entryPanel(s State) Panel {
	switch {
	case s.CampaignSlug != "":
		return PanelCourseForm
	case len(s.Cloneable) == 0:
		return m.newCoursePanel()
	default:
		return PanelNewOrClone
	}
}

func (m *Machine) newCoursePanel() Panel {
	if m.opts.SkipProgramChooser {
		return PanelCourseForm
	}
	return PanelWizardForm
}

func (m *Machine) editable(s State) bool {
	return s.Panel == PanelCourseForm && s.Phase == PhaseEditing
}

func (m *Machine) cloneable(s State, id int64) bool {
	return slices.ContainsFunc(s.Cloneable, func(c domain.CourseSummary) bool {
		return c.ID == id
	})
}

func (m *Machine) courseType(s State) domain.ProgramType {
	return s.Course.EffectiveType(m.opts.DefaultType)
}

func (m *Machine) updateField(s *State, e FieldUpdated) {
	course, err := domain.ApplyField(s.Course, e.Key, e.Value)
	if errors.Is(err, domain.ErrInvalidFieldValue) {
		msg := m.tr.T(domain.InvalidValueMessage(e.Key))
		if _, tracked := s.Validations[e.Key]; !tracked {
			s.Notice = msg
			return
		}
		if s.Rejected == nil {
			s.Rejected = make(map[string]string)
		}
		s.Rejected[e.Key] = e.Value
		s.Validations.SetInvalid(e.Key, msg)
		return
	}
	if err != nil {
		return
	}
	delete(s.Rejected, e.Key)
	s.Course = course
	m.validateKey(s, e.Key, true)
	switch e.Key {
	case domain.FieldTitle, domain.FieldSchool, domain.FieldTerm:
		s.Validations.SetValid(domain.FieldExists)
	}
}

// validateKey recomputes one tracked field. Untracked keys are ignored.
func (m *Machine) validateKey(s *State, key string, touched bool) {
	if _, tracked := s.Validations[key]; !tracked || key == domain.FieldExists {
		return
	}
	if _, rejected := s.Rejected[key]; rejected {
		s.Validations.SetInvalid(key, m.tr.T(domain.InvalidValueMessage(key)))
		return
	}
	msg := domain.ValidateField(s.Course, m.courseType(*s), key)
	if msg == "" {
		s.Validations.SetValid(key)
		return
	}
	if touched || s.Validations[key].Changed {
		s.Validations.SetInvalid(key, m.tr.T(msg))
	} else {
		s.Validations.SetPending(key, m.tr.T(msg))
	}
}

func (m *Machine) revalidate(s *State, touched bool) {
	for _, key := range domain.ValidationOrder {
		m.validateKey(s, key, touched)
	}
}

func (m *Machine) submit(s State) (State, []Effect) {
	s.Notice = ""
	s.Validations.Activate()
	m.revalidate(&s, true)
	if !s.Validations.IsValid() {
		return s, nil
	}
	if !domain.ExpectedStudentsValid(s.Course, m.courseType(s)) {
		s.Validations.SetInvalid(domain.FieldExpectedStudents, m.tr.T(domain.MsgFieldRequired))
		return s, nil
	}
	if !domain.DateTimesValid(s.Course) {
		s.Validations.SetInvalid(domain.FieldEnd, m.tr.T(domain.MsgFieldInvalidDateTime))
		return s, nil
	}
	s.Phase = PhaseCheckingSlug
	s.Validations.SetPending(domain.FieldExists, m.tr.T(domain.MsgCheckingUniqueness))
	return s, []Effect{CheckSlug{Slug: domain.GenerateSlug(s.Course)}}
}

func (m *Machine) slugChecked(s State, unique bool) (State, []Effect) {
	if !unique {
		s.Phase = PhaseEditing
		s.Validations.SetInvalid(domain.FieldExists, m.tr.T(domain.MsgAlreadyExists))
		return s, nil
	}
	s.Validations.SetValid(domain.FieldExists)
	s.Course = domain.CleanupSlugComponents(s.Course)
	if s.Course.Type == "" {
		s.Course.Type = m.opts.DefaultType
	}
	s.Phase = PhaseSaving
	return s, []Effect{SubmitCourse{Course: s.Course}}
}

func (m *Machine) redirect(s State, url string) (State, []Effect) {
	s.Phase = PhaseRedirected
	s.Redirect = url
	s.Notice = ""
	return s, []Effect{Navigate{URL: url}}
}

// View is the rendering-oriented projection of a State.
type View struct {
	Panel             Panel                  `json:"panel"`
	Phase             Phase                  `json:"phase"`
	Submitting        bool                   `json:"submitting"`
	CampaignSlug      string                 `json:"campaign_slug,omitempty"`
	Course            domain.Course          `json:"course"`
	TempID            string                 `json:"temp_id"`
	Validations       domain.Validations     `json:"validations"`
	Valid             bool                   `json:"valid"`
	FirstErrorMessage string                 `json:"first_error_message,omitempty"`
	Instructions      string                 `json:"instructions,omitempty"`
	Cloneable         []domain.CourseSummary `json:"cloneable"`
	ShowEventDates    bool                   `json:"show_event_dates"`
	ProgramTypes      []domain.ProgramType   `json:"program_types,omitempty"`
	Notice            string                 `json:"notice,omitempty"`
	Redirect          string                 `json:"redirect,omitempty"`
}

// View projects s for display.
func (m *Machine) View(s State) View {
	v := View{
		Panel:             s.Panel,
		Phase:             s.Phase,
		Submitting:        s.Submitting(),
		CampaignSlug:      s.CampaignSlug,
		Course:            s.Course,
		TempID:            domain.TempID(s.Course),
		Validations:       s.Validations,
		Valid:             s.Validations.IsValid(),
		FirstErrorMessage: s.Validations.FirstErrorMessage(),
		Cloneable:         s.Cloneable,
		ShowEventDates:    s.ShowEventDates,
		Notice:            s.Notice,
		Redirect:          s.Redirect,
	}
	if v.Cloneable == nil {
		v.Cloneable = []domain.CourseSummary{}
	}
	switch s.Panel {
	case PanelNewOrClone:
		v.Instructions = m.tr.T("creator.new_or_clone")
	case PanelCloneChooser:
		v.Instructions = m.tr.T("creator.choose_clone")
	case PanelCourseForm:
		v.Instructions = m.tr.T("creator.intro")
	case PanelWizardForm:
		v.ProgramTypes = domain.ProgramTypes
	}
	return v
}
