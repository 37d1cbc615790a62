package httpadapter

import (
	"net/http"
	"strings"

	"edu-dashboard/internal/core/domain"
)

type slugCheckResponse struct {
	Slug   string `json:"slug"`
	Unique bool   `json:"unique"`
}

func (h *Handler) handleCheckSlug(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if strings.TrimSpace(slug) == "" {
		http.Error(w, "missing slug", http.StatusBadRequest)
		return
	}
	unique, err := h.courses.CheckSlugUniqueness(r.Context(), slug)
	if err != nil {
		h.writeError(w, r, "check slug", err)
		return
	}
	h.writeJSON(w, http.StatusOK, slugCheckResponse{Slug: slug, Unique: unique})
}

// handleGetCourse looks a course up by ?slug=. Slugs contain a slash,
// so they are passed as a query parameter.
func (h *Handler) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		http.Error(w, "missing slug", http.StatusBadRequest)
		return
	}
	course, err := h.courses.GetCourse(r.Context(), viewerFrom(r.Context()), slug)
	if err != nil {
		h.writeError(w, r, "get course", err)
		return
	}
	h.writeJSON(w, http.StatusOK, course)
}

// handleMyCourses lists the courses the viewer can clone.
func (h *Handler) handleMyCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.CloneableCourses(r.Context(), viewerFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, "list courses", err)
		return
	}
	if courses == nil {
		courses = []domain.CourseSummary{}
	}
	h.writeJSON(w, http.StatusOK, courses)
}
