package domain

import (
	"errors"
	"maps"
	"strconv"
	"strings"
)

// Tracked field keys.
const (
	FieldTitle            = "title"
	FieldSchool           = "school"
	FieldTerm             = "term"
	FieldSubject          = "subject"
	FieldDescription      = "description"
	FieldRoleDescription  = "role_description"
	FieldLevel            = "level"
	FieldExpectedStudents = "expected_students"
	FieldLanguage         = "language"
	FieldProject          = "project"
	FieldPrivate          = "private"
	FieldExists           = "exists"
)

// Message keys attached to failed validations. They are resolved
// against the message catalog before being shown.
const (
	MsgFieldRequired        = "application.field_required"
	MsgFieldInvalidChars    = "application.field_invalid_characters"
	MsgFieldInvalidNumber   = "application.field_invalid_number"
	MsgFieldInvalidDateTime = "application.field_invalid_date_time"
	MsgFieldInvalidValue    = "application.field_invalid_value"
	MsgCheckingUniqueness   = "creator.checking_for_uniqueness"
	MsgAlreadyExists        = "creator.already_exists"
	MsgInvalidCourse        = "creator.invalid_course"
)

// ErrUnknownField is returned by ApplyField for keys the form does not edit.
var ErrUnknownField = errors.New("unknown course field")

// ErrInvalidFieldValue is returned by ApplyField when a value cannot be
// converted to the field type.
var ErrInvalidFieldValue = errors.New("invalid field value")

// InvalidValueMessage is the message key for input ApplyField rejected
// for key.
func InvalidValueMessage(key string) string {
	if key == FieldExpectedStudents {
		return MsgFieldInvalidNumber
	}
	return MsgFieldInvalidValue
}

// ValidationOrder is the order in which failed validations are reported.
var ValidationOrder = []string{
	FieldTitle,
	FieldSchool,
	FieldTerm,
	FieldExpectedStudents,
	FieldDescription,
	FieldStart,
	FieldEnd,
	FieldExists,
}

// Validation is the state of one tracked field. Changed fields have
// been touched or activated by a submit attempt and show their message.
type Validation struct {
	Valid   bool   `json:"valid"`
	Changed bool   `json:"changed"`
	Message string `json:"message,omitempty"`
}

// Validations maps field keys to their validation state.
type Validations map[string]Validation

// NewValidations returns every tracked field marked valid and unchanged.
func NewValidations() Validations {
	v := make(Validations, len(ValidationOrder))
	for _, key := range ValidationOrder {
		v[key] = Validation{Valid: true}
	}
	return v
}

// Clone returns a copy of v that can be modified independently.
func (v Validations) Clone() Validations {
	return maps.Clone(v)
}

// SetValid marks key valid.
func (v Validations) SetValid(key string) {
	v[key] = Validation{Valid: true, Changed: v[key].Changed}
}

// SetInvalid marks key invalid and visible with message.
func (v Validations) SetInvalid(key, message string) {
	v[key] = Validation{Valid: false, Changed: true, Message: message}
}

// SetPending marks key invalid without surfacing the message, used while
// an asynchronous check is in flight.
func (v Validations) SetPending(key, message string) {
	v[key] = Validation{Valid: false, Changed: false, Message: message}
}

// Activate marks every field changed so its message is shown.
func (v Validations) Activate() {
	for key, val := range v {
		val.Changed = true
		v[key] = val
	}
}

// IsValid reports whether every field is valid.
func (v Validations) IsValid() bool {
	for _, val := range v {
		if !val.Valid {
			return false
		}
	}
	return true
}

// FirstErrorMessage returns the message of the first changed, invalid
// field in ValidationOrder.
func (v Validations) FirstErrorMessage() string {
	for _, key := range ValidationOrder {
		if val, ok := v[key]; ok && val.Changed && !val.Valid {
			return val.Message
		}
	}
	return ""
}

// ValidateField checks one tracked field of c for a course of type t.
// It returns the message key of the failure, or "" when the field is valid.
func ValidateField(c Course, t ProgramType, key string) string {
	switch key {
	case FieldTitle:
		return requireSlugComponent(c.Title)
	case FieldSchool:
		return requireSlugComponent(c.School)
	case FieldTerm:
		if !t.IsClassroom() && strings.TrimSpace(c.Term) == "" {
			return ""
		}
		return requireSlugComponent(c.Term)
	case FieldExpectedStudents:
		if t.IsClassroom() && c.ExpectedStudents <= 0 {
			return MsgFieldRequired
		}
	case FieldDescription:
		if t.IsClassroom() && strings.TrimSpace(c.Description) == "" {
			return MsgFieldRequired
		}
	case FieldStart:
		if c.Start.IsZero() {
			return MsgFieldRequired
		}
	case FieldEnd:
		if c.End.IsZero() {
			return MsgFieldRequired
		}
	}
	return ""
}

func requireSlugComponent(s string) string {
	if strings.TrimSpace(s) == "" {
		return MsgFieldRequired
	}
	if !ValidSlugComponent(s) {
		return MsgFieldInvalidChars
	}
	return ""
}

// ApplyField sets a text-entered field on c.
func ApplyField(c Course, key, value string) (Course, error) {
	switch key {
	case FieldTitle:
		c.Title = value
	case FieldSchool:
		c.School = value
	case FieldTerm:
		c.Term = value
	case FieldSubject:
		c.Subject = value
	case FieldDescription:
		c.Description = value
	case FieldRoleDescription:
		c.RoleDescription = value
	case FieldLevel:
		c.Level = value
	case FieldLanguage:
		c.Language = value
	case FieldProject:
		c.Project = value
	case FieldExpectedStudents:
		if strings.TrimSpace(value) == "" {
			c.ExpectedStudents = 0
			return c, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return c, ErrInvalidFieldValue
		}
		c.ExpectedStudents = n
	case FieldPrivate:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return c, ErrInvalidFieldValue
		}
		c.Private = b
	default:
		return c, ErrUnknownField
	}
	return c, nil
}

// SubmitErrors validates every tracked field of c, including the submit
// rules on expected students and date ranges. It returns failed field
// keys mapped to message keys; an empty map means c can be submitted.
func SubmitErrors(c Course, t ProgramType) map[string]string {
	errs := map[string]string{}
	for _, key := range ValidationOrder {
		if msg := ValidateField(c, t, key); msg != "" {
			errs[key] = msg
		}
	}
	if !ExpectedStudentsValid(c, t) {
		errs[FieldExpectedStudents] = MsgFieldRequired
	}
	if _, ok := errs[FieldEnd]; !ok && !DateTimesValid(c) {
		errs[FieldEnd] = MsgFieldInvalidDateTime
	}
	return errs
}
