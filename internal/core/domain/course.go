package domain

import "time"

// ProgramType is the kind of program a course belongs to. It selects
// which wizard fields are shown and which submit rules apply.
type ProgramType string

const (
	ClassroomProgram     ProgramType = "ClassroomProgramCourse"
	BasicCourse          ProgramType = "BasicCourse"
	VisitingScholarship  ProgramType = "VisitingScholarship"
	Editathon            ProgramType = "Editathon"
	ArticleScopedProgram ProgramType = "ArticleScopedProgram"
	FellowsCohort        ProgramType = "FellowsCohort"
)

// ProgramTypes lists every program type offered by the wizard form.
var ProgramTypes = []ProgramType{
	ClassroomProgram,
	BasicCourse,
	VisitingScholarship,
	Editathon,
	ArticleScopedProgram,
	FellowsCohort,
}

// Valid reports whether t is a known program type.
func (t ProgramType) Valid() bool {
	for _, v := range ProgramTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsClassroom reports whether t is the classroom program.
func (t ProgramType) IsClassroom() bool {
	return t == ClassroomProgram
}

// Course is an education program course. Timeline dates are optional
// and bound the assignment window inside Start and End.
type Course struct {
	ID                   int64       `json:"id,omitempty"`
	Title                string      `json:"title"`
	School               string      `json:"school"`
	Term                 string      `json:"term"`
	Subject              string      `json:"subject,omitempty"`
	Description          string      `json:"description,omitempty"`
	RoleDescription      string      `json:"role_description,omitempty"`
	Level                string      `json:"level,omitempty"`
	ExpectedStudents     int         `json:"expected_students"`
	Start                time.Time   `json:"start"`
	End                  time.Time   `json:"end"`
	TimelineStart        *time.Time  `json:"timeline_start,omitempty"`
	TimelineEnd          *time.Time  `json:"timeline_end,omitempty"`
	Language             string      `json:"language,omitempty"`
	Project              string      `json:"project,omitempty"`
	Private              bool        `json:"private"`
	Slug                 string      `json:"slug,omitempty"`
	Type                 ProgramType `json:"type,omitempty"`
	InitialCampaignSlug  string      `json:"initial_campaign_slug,omitempty"`
	InitialCampaignTitle string      `json:"initial_campaign_title,omitempty"`
	CreatorID            string      `json:"creator_id,omitempty"`
	CreatedAt            time.Time   `json:"created_at,omitzero"`
	UpdatedAt            time.Time   `json:"updated_at,omitzero"`
}

// Active reports whether the course ends after now.
func (c Course) Active(now time.Time) bool {
	return c.End.After(now)
}

// EffectiveType returns the course type, falling back to def when the
// course has none selected yet.
func (c Course) EffectiveType(def ProgramType) ProgramType {
	if c.Type != "" {
		return c.Type
	}
	return def
}

// CourseSummary is the short form of a course offered for cloning.
type CourseSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Summary returns the summary of c.
func (c Course) Summary() CourseSummary {
	return CourseSummary{ID: c.ID, Title: c.Title, Slug: c.Slug}
}

// CoursePath returns the page of a course, or the timeline wizard for
// classroom courses that were just created.
func CoursePath(slug string, wizard bool) string {
	if wizard {
		return "/courses/" + slug + "/timeline/wizard"
	}
	return "/courses/" + slug
}
