package wizard

import (
	"time"

	"edu-dashboard/internal/core/domain"
)

// Event is an input to the state machine: a user interaction or the
// outcome of an effect.
type Event interface {
	isEvent()
}

// Started is sent once when the wizard is opened. CampaignSlug is the
// originating campaign, if any.
type Started struct {
	CampaignSlug string
}

// CloneableLoaded carries the courses the user may clone.
type CloneableLoaded struct {
	Courses []domain.CourseSummary
}

// CampaignLoaded carries the originating campaign; nil when it was not found.
type CampaignLoaded struct {
	Campaign *domain.Campaign
}

// ChooseNew selects creating a new course.
type ChooseNew struct{}

// ShowCloneChooser opens the list of cloneable courses.
type ShowCloneChooser struct{}

// CancelClone returns from the clone chooser.
type CancelClone struct{}

// ChooseProgram selects a program type in the wizard form.
type ChooseProgram struct {
	Type domain.ProgramType
}

// FieldUpdated edits a text field of the course.
type FieldUpdated struct {
	Key   string
	Value string
}

// DateUpdated edits one of the course dates. A nil value clears it.
type DateUpdated struct {
	Key   string
	Value *time.Time
}

// ToggleEventDates shows or hides the separate timeline dates.
type ToggleEventDates struct{}

// SubmitRequested is a click on the create button.
type SubmitRequested struct{}

// SlugChecked is the outcome of a uniqueness check for Slug.
type SlugChecked struct {
	Slug   string
	Unique bool
}

// SlugCheckFailed reports that the uniqueness check could not complete.
type SlugCheckFailed struct {
	Message string
}

// SaveSucceeded carries the persisted course.
type SaveSucceeded struct {
	Course domain.Course
}

// SaveFailed reports a rejected submission.
type SaveFailed struct {
	Message string
}

// CloneSelected picks a course from the clone chooser.
type CloneSelected struct {
	CourseID int64
}

// CloneSucceeded carries the newly cloned course.
type CloneSucceeded struct {
	Course domain.Course
}

// CloneFailed reports a failed clone.
type CloneFailed struct {
	Message string
}

func (Started) isEvent()          {}
func (CloneableLoaded) isEvent()  {}
func (CampaignLoaded) isEvent()   {}
func (ChooseNew) isEvent()        {}
func (ShowCloneChooser) isEvent() {}
func (CancelClone) isEvent()      {}
func (ChooseProgram) isEvent()    {}
func (FieldUpdated) isEvent()     {}
func (DateUpdated) isEvent()      {}
func (ToggleEventDates) isEvent() {}
func (SubmitRequested) isEvent()  {}
func (SlugChecked) isEvent()      {}
func (SlugCheckFailed) isEvent()  {}
func (SaveSucceeded) isEvent()    {}
func (SaveFailed) isEvent()       {}
func (CloneSelected) isEvent()    {}
func (CloneSucceeded) isEvent()   {}
func (CloneFailed) isEvent()      {}

// UserEvent reports whether ev may be sent by a user. Other events
// carry effect outcomes and are only produced by the session driver.
func UserEvent(ev Event) bool {
	switch ev.(type) {
	case ChooseNew, ShowCloneChooser, CancelClone, ChooseProgram,
		FieldUpdated, DateUpdated, ToggleEventDates, SubmitRequested, CloneSelected:
		return true
	}
	return false
}
