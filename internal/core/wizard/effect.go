package wizard

import "edu-dashboard/internal/core/domain"

// Effect is a command produced by a transition. The caller executes it
// and reports the outcome with the matching event.
type Effect interface {
	isEffect()
}

// FetchCampaign loads the originating campaign; answered by CampaignLoaded.
type FetchCampaign struct {
	Slug string
}

// LoadCloneable loads the user's cloneable courses; answered by CloneableLoaded.
type LoadCloneable struct{}

// CheckSlug checks slug uniqueness; answered by SlugChecked or SlugCheckFailed.
type CheckSlug struct {
	Slug string
}

// SubmitCourse persists the course; answered by SaveSucceeded or SaveFailed.
type SubmitCourse struct {
	Course domain.Course
}

// CloneCourse copies an existing course; answered by CloneSucceeded or CloneFailed.
type CloneCourse struct {
	CourseID int64
}

// Navigate leaves the wizard for URL.
type Navigate struct {
	URL string
}

func (FetchCampaign) isEffect() {}
func (LoadCloneable) isEffect() {}
func (CheckSlug) isEffect()     {}
func (SubmitCourse) isEffect()  {}
func (CloneCourse) isEffect()   {}
func (Navigate) isEffect()      {}
