package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
)

type viewerKey struct{}

// identify attaches the viewer named by the request token. Requests
// without a valid token continue as anonymous.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.token(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := h.tokens.Validate(token)
		if err != nil {
			h.logger.Debug("rejected access token", slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), viewerKey{}, claims.Viewer())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireViewer answers 401 for anonymous requests.
func (h *Handler) requireViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if viewerFrom(r.Context()).Anonymous() {
			h.writeError(w, r, "auth", port.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) token(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); authz != "" {
		scheme, token, ok := strings.Cut(authz, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if h.cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(h.cookieName); err == nil {
		return c.Value
	}
	return ""
}

// viewerFrom returns the viewer of a request, anonymous when unknown.
func viewerFrom(ctx context.Context) domain.Viewer {
	v, _ := ctx.Value(viewerKey{}).(domain.Viewer)
	return v
}
