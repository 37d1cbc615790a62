package httpadapter

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"edu-dashboard/internal/core/domain"
)

// campaignParam returns the campaign named by the query. cohort is the
// legacy name of the parameter.
func campaignParam(r *http.Request) string {
	q := r.URL.Query()
	if slug := q.Get("campaign"); slug != "" {
		return slug
	}
	return q.Get("cohort")
}

// handleExplore redirects to a campaign page when the query names a
// campaign, and otherwise renders the active campaigns and the courses
// of the default campaign. Unknown campaigns result in HTTP 404.
func (h *Handler) handleExplore(w http.ResponseWriter, r *http.Request) {
	if slug := campaignParam(r); slug != "" {
		camp, err := h.explore.ResolveCampaign(r.Context(), slug)
		if err != nil {
			h.writeError(w, r, "resolve campaign", err)
			return
		}
		http.Redirect(w, r, camp.Path(), http.StatusFound)
		return
	}

	resp, err := h.explore.Explore(r.Context(), viewerFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, "explore", err)
		return
	}
	h.render(w, "explore.html", resp)
}

// handleCampaign renders a campaign with its active courses.
func (h *Handler) handleCampaign(w http.ResponseWriter, r *http.Request) {
	overview, err := h.explore.CampaignOverview(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, "campaign overview", err)
		return
	}
	h.render(w, "campaign.html", overview)
}

type campaignJSON struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	EndDate     time.Time `json:"end_date"`
	URL         string    `json:"url"`
}

type exploreJSON struct {
	Campaigns       []campaignJSON  `json:"campaigns"`
	DefaultCampaign *campaignJSON   `json:"default_campaign,omitempty"`
	Courses         []domain.Course `json:"courses"`
}

func toCampaignJSON(c domain.Campaign) campaignJSON {
	return campaignJSON{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		EndDate:     c.EndDate,
		URL:         c.Path(),
	}
}

// handleExploreJSON returns the explore listing as JSON.
func (h *Handler) handleExploreJSON(w http.ResponseWriter, r *http.Request) {
	resp, err := h.explore.Explore(r.Context(), viewerFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, "explore", err)
		return
	}
	out := exploreJSON{
		Campaigns: make([]campaignJSON, 0, len(resp.Campaigns)),
		Courses:   resp.Courses,
	}
	for _, c := range resp.Campaigns {
		out.Campaigns = append(out.Campaigns, toCampaignJSON(c))
	}
	if resp.DefaultCampaign != nil {
		def := toCampaignJSON(*resp.DefaultCampaign)
		out.DefaultCampaign = &def
	}
	if out.Courses == nil {
		out.Courses = []domain.Course{}
	}
	h.writeJSON(w, http.StatusOK, out)
}

// render executes a page template into a buffer so template errors can
// still produce a 500.
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render template", slog.String("template", name), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
