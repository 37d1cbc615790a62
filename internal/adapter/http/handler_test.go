package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"edu-dashboard/internal/auth"
	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
	"edu-dashboard/internal/core/port/mocks"
	"edu-dashboard/internal/core/wizard"
)

type fixture struct {
	handler *Handler
	explore *mocks.MockExploreUseCase
	courses *mocks.MockCourseUseCase
	wizard  *mocks.MockWizardUseCase
	tokens  *auth.Tokens
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		explore: mocks.NewMockExploreUseCase(t),
		courses: mocks.NewMockCourseUseCase(t),
		wizard:  mocks.NewMockWizardUseCase(t),
		tokens:  auth.NewTokens("test-secret", "edu-dashboard", time.Hour),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = NewHandler(f.explore, f.courses, f.wizard, f.tokens, "token", logger)
	return f
}

func (f fixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, req)
	return rec
}

func (f fixture) bearer(t *testing.T, req *http.Request, userID, role string) *http.Request {
	t.Helper()
	token, err := f.tokens.Issue(userID, role)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusOf(port.ErrSessionNotFound))
	assert.Equal(t, http.StatusConflict, statusOf(port.ErrSlugTaken))
	assert.Equal(t, http.StatusForbidden, statusOf(port.ErrForbidden))
	assert.Equal(t, http.StatusUnauthorized, statusOf(port.ErrUnauthenticated))
	assert.Equal(t, http.StatusBadRequest, statusOf(port.ErrInvalidEvent))
	assert.Equal(t, http.StatusInternalServerError, statusOf(io.ErrUnexpectedEOF))
}

func TestCheckSlug(t *testing.T) {
	f := newFixture(t)
	f.courses.EXPECT().CheckSlugUniqueness(mock.Anything, "School/Title").Return(true, nil)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/courses/check_slug?slug=School%2FTitle", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body slugCheckResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, slugCheckResponse{Slug: "School/Title", Unique: true}, body)

	rec = f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/courses/check_slug", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCourse(t *testing.T) {
	f := newFixture(t)
	f.courses.EXPECT().GetCourse(mock.Anything, domain.Viewer{}, "s/missing").Return(nil, port.ErrCourseNotFound)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/courses?slug=s%2Fmissing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMyCoursesRequiresAuth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/users/me/courses", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/courses", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = f.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMyCoursesWithCookie(t *testing.T) {
	f := newFixture(t)
	viewer := domain.Viewer{UserID: "u1", Role: domain.RoleInstructor}
	f.courses.EXPECT().CloneableCourses(mock.Anything, viewer).Return(nil, nil)

	token, err := f.tokens.Issue("u1", domain.RoleInstructor)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/courses", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	rec := f.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestWizardEndpoints(t *testing.T) {
	f := newFixture(t)
	viewer := domain.Viewer{UserID: "u1", Role: domain.RoleInstructor}
	view := wizard.View{Panel: wizard.PanelCourseForm, Phase: wizard.PhaseEditing}

	f.wizard.EXPECT().Start(mock.Anything, viewer, "spring").
		Return(&port.WizardSession{ID: "s1", View: view}, nil)
	f.wizard.EXPECT().Dispatch(mock.Anything, viewer, "s1", wizard.FieldUpdated{Key: "title", Value: "Biology"}).
		Return(&port.WizardSession{ID: "s1", View: view}, nil)
	f.wizard.EXPECT().Get(mock.Anything, viewer, "gone").Return(nil, port.ErrSessionNotFound)

	rec := f.do(t, f.bearer(t, httptest.NewRequest(http.MethodPost, "/api/v1/wizard?campaign_slug=spring", nil), "u1", domain.RoleInstructor))
	require.Equal(t, http.StatusCreated, rec.Code)
	var started map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&started))
	assert.Equal(t, "s1", started["id"])
	assert.Equal(t, "course_form", started["panel"])

	body := strings.NewReader(`{"type":"field_updated","key":"title","value":"Biology"}`)
	rec = f.do(t, f.bearer(t, httptest.NewRequest(http.MethodPost, "/api/v1/wizard/s1/events", body), "u1", domain.RoleInstructor))
	assert.Equal(t, http.StatusOK, rec.Code)

	body = strings.NewReader(`{"type":"save_succeeded"}`)
	rec = f.do(t, f.bearer(t, httptest.NewRequest(http.MethodPost, "/api/v1/wizard/s1/events", body), "u1", domain.RoleInstructor))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = strings.NewReader(`{`)
	rec = f.do(t, f.bearer(t, httptest.NewRequest(http.MethodPost, "/api/v1/wizard/s1/events", body), "u1", domain.RoleInstructor))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, f.bearer(t, httptest.NewRequest(http.MethodGet, "/api/v1/wizard/gone", nil), "u1", domain.RoleInstructor))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventRequestDates(t *testing.T) {
	var req eventRequest
	require.NoError(t, json.Unmarshal([]byte(`{"type":"date_updated","key":"start","date":"2025-01-10T00:00:00Z"}`), &req))
	ev, err := req.event()
	require.NoError(t, err)

	du, ok := ev.(wizard.DateUpdated)
	require.True(t, ok)
	assert.Equal(t, domain.FieldStart, du.Key)
	require.NotNil(t, du.Value)
	assert.True(t, du.Value.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)))
}
