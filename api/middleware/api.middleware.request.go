package middleware

import (
	"context"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/service"
)

const (
	HeaderRequestID  = "X-Request-ID"
	HeaderViewerRole = "X-Viewer-Role"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID propagates the caller's X-Request-ID or assigns a new one
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = nuts.NID("req", 12)
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id set by RequestID, or a fresh one
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id
	}
	return nuts.NID("req", 12)
}

// ViewerRole renders responses for the dashboard role named in X-Viewer-Role.
// Unknown roles are ignored and the request is served with the guest view.
func ViewerRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderViewerRole)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		role, ok := models.ParseRole(header)
		if !ok {
			nuts.L.Warnf("[API] Ignoring unknown viewer role %q", header)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(service.WithViewerRole(r.Context(), role)))
	})
}
