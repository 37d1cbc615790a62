package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
	"edu-dashboard/internal/core/wizard"
)

type wizardResponse struct {
	ID string `json:"id"`
	wizard.View
}

// eventRequest is the body of POST /api/v1/wizard/{id}/events.
type eventRequest struct {
	Type        string             `json:"type"`
	Key         string             `json:"key,omitempty"`
	Value       string             `json:"value,omitempty"`
	Date        *time.Time         `json:"date,omitempty"`
	ProgramType domain.ProgramType `json:"program_type,omitempty"`
	CourseID    int64              `json:"course_id,omitempty"`
}

// event converts the request into a wizard event.
func (req eventRequest) event() (wizard.Event, error) {
	switch req.Type {
	case "choose_new":
		return wizard.ChooseNew{}, nil
	case "show_clone_chooser":
		return wizard.ShowCloneChooser{}, nil
	case "cancel_clone":
		return wizard.CancelClone{}, nil
	case "choose_program":
		return wizard.ChooseProgram{Type: req.ProgramType}, nil
	case "field_updated":
		return wizard.FieldUpdated{Key: req.Key, Value: req.Value}, nil
	case "date_updated":
		return wizard.DateUpdated{Key: req.Key, Value: req.Date}, nil
	case "toggle_event_dates":
		return wizard.ToggleEventDates{}, nil
	case "submit":
		return wizard.SubmitRequested{}, nil
	case "clone_selected":
		return wizard.CloneSelected{CourseID: req.CourseID}, nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", port.ErrInvalidEvent, req.Type)
}

func (h *Handler) handleWizardStart(w http.ResponseWriter, r *http.Request) {
	sess, err := h.wizard.Start(r.Context(), viewerFrom(r.Context()), r.URL.Query().Get("campaign_slug"))
	if err != nil {
		h.writeError(w, r, "start wizard", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, wizardResponse{ID: sess.ID, View: sess.View})
}

func (h *Handler) handleWizardGet(w http.ResponseWriter, r *http.Request) {
	sess, err := h.wizard.Get(r.Context(), viewerFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get wizard", err)
		return
	}
	h.writeJSON(w, http.StatusOK, wizardResponse{ID: sess.ID, View: sess.View})
}

// handleWizardEvent applies one user event and returns the new view.
// A view with a redirect tells the client to leave the wizard.
func (h *Handler) handleWizardEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ev, err := req.event()
	if err != nil {
		h.writeError(w, r, "decode wizard event", err)
		return
	}
	sess, err := h.wizard.Dispatch(r.Context(), viewerFrom(r.Context()), chi.URLParam(r, "id"), ev)
	if err != nil {
		h.writeError(w, r, "dispatch wizard event", err)
		return
	}
	h.writeJSON(w, http.StatusOK, wizardResponse{ID: sess.ID, View: sess.View})
}
