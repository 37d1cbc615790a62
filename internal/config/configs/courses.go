package configs

import "time"

// Courses holds deployment settings of the course creator and explorer.
type Courses struct {
	// DefaultCampaign is the slug of the campaign listed on the explore page.
	DefaultCampaign string `env:"DEFAULT_CAMPAIGN" envDefault:"default_campaign"`
	// DefaultType is the program type of courses created without choosing one.
	DefaultType string `env:"DEFAULT_TYPE" envDefault:"ClassroomProgramCourse"`
	// StringPrefix selects the message catalog used for course strings.
	StringPrefix string `env:"STRING_PREFIX" envDefault:"courses"`
	// SkipProgramChooser opens the course form directly for new courses.
	SkipProgramChooser bool `env:"SKIP_PROGRAM_CHOOSER" envDefault:"false"`
	// SessionTTL is how long an idle wizard session is kept.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`
}
