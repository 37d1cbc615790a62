package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// slugComponentRe matches values allowed in the title, school and term
// fields. Slashes separate slug segments and control characters would
// leak into URLs, so neither is accepted.
var slugComponentRe = regexp.MustCompile(`^[^/\p{Cc}\p{Cf}]+$`)

// ValidSlugComponent reports whether s can be used as part of a course slug.
func ValidSlugComponent(s string) bool {
	return slugComponentRe.MatchString(s)
}

// slugify trims and normalises one slug segment. Spaces become
// underscores; composed and decomposed forms of the same text produce
// the same slug.
func slugify(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "_")
}

// GenerateSlug derives the course slug from school, title and term:
// "school/title_(term)", or "school/title" when there is no term.
func GenerateSlug(c Course) string {
	school := slugify(c.School)
	title := slugify(c.Title)
	term := slugify(c.Term)
	if term == "" {
		return school + "/" + title
	}
	return school + "/" + title + "_(" + term + ")"
}

// TempID is the identifier shown while a course is being drafted. It
// stays empty until both title and school are filled in.
func TempID(c Course) string {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.School) == "" {
		return ""
	}
	return GenerateSlug(c)
}

// CleanupSlugComponents trims the fields the slug is built from.
func CleanupSlugComponents(c Course) Course {
	c.Title = strings.TrimSpace(c.Title)
	c.School = strings.TrimSpace(c.School)
	c.Term = strings.TrimSpace(c.Term)
	return c
}
