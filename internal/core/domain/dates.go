package domain

import "time"

// Date field keys accepted by UpdateCourseDates.
const (
	FieldStart         = "start"
	FieldEnd           = "end"
	FieldTimelineStart = "timeline_start"
	FieldTimelineEnd   = "timeline_end"
)

// UpdateCourseDates sets one of the course dates and keeps the others
// consistent: the end never precedes the start, and timeline dates are
// clamped into the course range. A nil value clears a timeline date;
// it is ignored for start and end.
func UpdateCourseDates(c Course, key string, value *time.Time) Course {
	switch key {
	case FieldStart:
		if value == nil {
			return c
		}
		c.Start = *value
	case FieldEnd:
		if value == nil {
			return c
		}
		c.End = *value
	case FieldTimelineStart:
		c.TimelineStart = copyTime(value)
	case FieldTimelineEnd:
		c.TimelineEnd = copyTime(value)
	default:
		return c
	}

	if !c.Start.IsZero() && !c.End.IsZero() && c.Start.After(c.End) {
		if key == FieldEnd {
			c.Start = c.End
		} else {
			c.End = c.Start
		}
	}
	c.TimelineStart = clamp(c.TimelineStart, c.Start, c.End)
	c.TimelineEnd = clamp(c.TimelineEnd, c.Start, c.End)
	return c
}

// DateTimesValid reports whether start precedes end, and whether the
// timeline start precedes the timeline end when both are set.
func DateTimesValid(c Course) bool {
	if !c.Start.Before(c.End) {
		return false
	}
	if c.TimelineStart != nil && c.TimelineEnd != nil && !c.TimelineStart.Before(*c.TimelineEnd) {
		return false
	}
	return true
}

// ExpectedStudentsValid reports whether the expected number of students
// is acceptable for a course of type t. Classroom courses need at least one.
func ExpectedStudentsValid(c Course, t ProgramType) bool {
	if t.IsClassroom() {
		return c.ExpectedStudents > 0
	}
	return c.ExpectedStudents >= 0
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func clamp(t *time.Time, lo, hi time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	if !lo.IsZero() && v.Before(lo) {
		v = lo
	}
	if !hi.IsZero() && v.After(hi) {
		v = hi
	}
	return &v
}
