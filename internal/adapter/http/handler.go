package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"edu-dashboard/internal/auth"
	"edu-dashboard/internal/core/port"
)

// TokenValidator checks access tokens.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// HTML pages serve the campaign explorer; the JSON API under /api/v1
// drives the course wizard.
type Handler struct {
	explore    port.ExploreUseCase
	courses    port.CourseUseCase
	wizard     port.WizardUseCase
	tokens     TokenValidator
	cookieName string
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. Tokens are
// read from the Authorization header or from the cookieName cookie.
func NewHandler(explore port.ExploreUseCase, courses port.CourseUseCase, wizard port.WizardUseCase, tokens TokenValidator, cookieName string, logger *slog.Logger) *Handler {
	h := &Handler{
		explore:    explore,
		courses:    courses,
		wizard:     wizard,
		tokens:     tokens,
		cookieName: cookieName,
		logger:     logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.identify)

	r.Get("/healthz", h.handleHealth)
	r.Get("/explore", h.handleExplore)
	r.Get("/campaigns/{slug}", h.handleCampaign)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/explore", h.handleExploreJSON)
		r.Get("/courses", h.handleGetCourse)
		r.Get("/courses/check_slug", h.handleCheckSlug)

		r.Group(func(r chi.Router) {
			r.Use(h.requireViewer)
			r.Get("/users/me/courses", h.handleMyCourses)
			r.Post("/wizard", h.handleWizardStart)
			r.Get("/wizard/{id}", h.handleWizardGet)
			r.Post("/wizard/{id}/events", h.handleWizardEvent)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// writeJSON encodes v with status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to HTTP statuses. Unexpected errors
// are logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrCourseNotFound),
		errors.Is(err, port.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrInvalidCourse), errors.Is(err, port.ErrInvalidEvent):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, port.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, port.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
