package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// ViewerIDKey is the context key for the viewer's id
	ViewerIDKey contextKey = "viewer_id"
)

// ViewerContext extracts the optional viewer_id query parameter and stashes
// it in the request context. The surrounding system holds the logged-in
// user's id client-side and passes it explicitly on every request; there is
// no server session to consult. A missing or malformed viewer_id simply
// means an anonymous viewer.
func ViewerContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.URL.Query().Get("viewer_id"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				ctx := context.WithValue(r.Context(), ViewerIDKey, id)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetViewerIDFromContext returns the viewer id set by ViewerContext.
// ok is false for anonymous requests.
func GetViewerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ViewerIDKey).(int64)
	return id, ok
}
