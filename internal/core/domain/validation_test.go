package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationsLifecycle(t *testing.T) {
	v := NewValidations()
	require.True(t, v.IsValid())
	assert.Empty(t, v.FirstErrorMessage())

	v.SetPending(FieldExists, "checking")
	assert.False(t, v.IsValid())
	assert.Empty(t, v.FirstErrorMessage(), "pending messages stay hidden")

	v.Activate()
	assert.Equal(t, "checking", v.FirstErrorMessage())

	v.SetInvalid(FieldSchool, "school required")
	v.SetInvalid(FieldTitle, "title required")
	assert.Equal(t, "title required", v.FirstErrorMessage())

	v.SetValid(FieldTitle)
	v.SetValid(FieldSchool)
	v.SetValid(FieldExists)
	assert.True(t, v.IsValid())
}

func TestValidationsClone(t *testing.T) {
	v := NewValidations()
	c := v.Clone()
	c.SetInvalid(FieldTitle, "x")
	assert.True(t, v[FieldTitle].Valid)
}

func TestApplyField(t *testing.T) {
	c, err := ApplyField(Course{}, FieldExpectedStudents, " 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, c.ExpectedStudents)

	_, err = ApplyField(c, FieldExpectedStudents, "-1")
	assert.ErrorIs(t, err, ErrInvalidFieldValue)

	c, err = ApplyField(c, FieldPrivate, "true")
	require.NoError(t, err)
	assert.True(t, c.Private)

	_, err = ApplyField(c, "slug", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestInvalidValueMessage(t *testing.T) {
	assert.Equal(t, MsgFieldInvalidNumber, InvalidValueMessage(FieldExpectedStudents))
	assert.Equal(t, MsgFieldInvalidValue, InvalidValueMessage(FieldPrivate))
}

func TestSubmitErrors(t *testing.T) {
	valid := Course{
		Title:            "Biology",
		School:           "MIT",
		Term:             "Fall",
		Description:      "d",
		ExpectedStudents: 10,
		Start:            day(2026, 1, 10),
		End:              day(2026, 5, 10),
	}
	assert.Empty(t, SubmitErrors(valid, ClassroomProgram))

	noStudents := valid
	noStudents.ExpectedStudents = 0
	assert.Equal(t, map[string]string{FieldExpectedStudents: MsgFieldRequired}, SubmitErrors(noStudents, ClassroomProgram))
	assert.Empty(t, SubmitErrors(noStudents, BasicCourse))

	backwards := valid
	backwards.End = backwards.Start
	assert.Equal(t, map[string]string{FieldEnd: MsgFieldInvalidDateTime}, SubmitErrors(backwards, ClassroomProgram))

	noTerm := valid
	noTerm.Term = ""
	assert.Contains(t, SubmitErrors(noTerm, ClassroomProgram), FieldTerm)
	assert.NotContains(t, SubmitErrors(noTerm, BasicCourse), FieldTerm)
}

func TestCampaignActive(t *testing.T) {
	now := day(2026, 10, 19)
	assert.True(t, Campaign{EndDate: day(2050, 1, 10)}.Active(now))
	assert.False(t, Campaign{EndDate: day(2016, 2, 10)}.Active(now))
}
