// Package i18n holds the message catalog used for validation messages
// and wizard instructions.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Course string prefixes. Classroom deployments call programs "courses";
// other deployments use the generic wording.
const (
	PrefixCourses = "courses"
	PrefixGeneric = "courses_generic"
)

// prefixedNamespace marks keys that are looked up under the course
// string prefix.
const prefixedNamespace = "creator."

var english = map[string]string{
	"application.field_required":           "This field is required.",
	"application.field_invalid_characters": "This field contains invalid characters.",
	"application.field_invalid_number":     "Please enter a whole number.",
	"application.field_invalid_date_time":  "The end must be after the start.",
	"application.field_invalid_value":      "This value is not allowed.",

	"courses.creator.checking_for_uniqueness": "Checking for uniqueness...",
	"courses.creator.already_exists":          "This course already exists. Consider changing the name, school, or term to make it unique.",
	"courses.creator.new_or_clone":            "You can create a new course or reuse one of your previous courses.",
	"courses.creator.choose_clone":            "Choose one of your previous courses to reuse.",
	"courses.creator.intro":                   "Tell us about your course.",
	"courses.creator.invalid_course":          "The course could not be saved. Please check its details and try again.",

	"courses_generic.creator.checking_for_uniqueness": "Checking for uniqueness...",
	"courses_generic.creator.already_exists":          "This program already exists. Consider changing the name, institution, or time period to make it unique.",
	"courses_generic.creator.new_or_clone":            "You can create a new program or reuse one of your previous programs.",
	"courses_generic.creator.choose_clone":            "Choose one of your previous programs to reuse.",
	"courses_generic.creator.intro":                   "Tell us about your program.",
	"courses_generic.creator.invalid_course":          "The program could not be saved. Please check its details and try again.",
}

func init() {
	for key, msg := range english {
		if err := message.SetString(language.English, key, msg); err != nil {
			panic(err)
		}
	}
}

// Translator resolves message keys for one language and course prefix.
type Translator struct {
	printer *message.Printer
	prefix  string
}

// NewTranslator returns a Translator for tag. An empty prefix selects
// PrefixCourses.
func NewTranslator(tag language.Tag, prefix string) *Translator {
	if prefix == "" {
		prefix = PrefixCourses
	}
	return &Translator{printer: message.NewPrinter(tag), prefix: prefix}
}

// English returns an English Translator for prefix.
func English(prefix string) *Translator {
	return NewTranslator(language.English, prefix)
}

// T returns the message for key. Keys in the creator namespace are
// resolved under the translator prefix. Unknown keys are returned as is.
func (t *Translator) T(key string) string {
	if strings.HasPrefix(key, prefixedNamespace) {
		key = t.prefix + "." + key
	}
	return t.printer.Sprintf(key)
}

// Prefix returns the course string prefix of t.
func (t *Translator) Prefix() string {
	return t.prefix
}
