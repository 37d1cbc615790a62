package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorResolvesPrefixedKeys(t *testing.T) {
	courses := English(PrefixCourses)
	generic := English(PrefixGeneric)

	assert.Contains(t, courses.T("creator.already_exists"), "course already exists")
	assert.Contains(t, generic.T("creator.already_exists"), "program already exists")
	assert.Equal(t, "This field is required.", generic.T("application.field_required"))
	assert.Contains(t, courses.T("creator.invalid_course"), "course could not be saved")
	assert.Equal(t, "This value is not allowed.", courses.T("application.field_invalid_value"))
}

func TestTranslatorDefaultsPrefix(t *testing.T) {
	tr := English("")
	assert.Equal(t, PrefixCourses, tr.Prefix())
	assert.Equal(t, "Tell us about your course.", tr.T("creator.intro"))
}

func TestTranslatorUnknownKey(t *testing.T) {
	assert.Equal(t, "application.nope", English(PrefixCourses).T("application.nope"))
}
