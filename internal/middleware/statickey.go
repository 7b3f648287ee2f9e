package middleware

import (
	"net/http"

	"github.com/hugmob/hugger-backend/internal/errs"
)

// GHLKeyHeader carries the shared integration secret.
const GHLKeyHeader = "X-GHL-API-Key"

// RequireGHLKey authorizes integration calls with a single static key.
// An unconfigured server-side key is a deployment fault and surfaces
// as a 500, never as a 401/403.
func (m *Middleware) RequireGHLKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(GHLKeyHeader)
		if key == "" {
			m.ResponseHandler.WriteError(w, r, http.StatusUnauthorized, "unauthorized", "missing API key")
			return
		}

		if m.GHLKey == "" {
			m.ResponseHandler.HandleError(w, r, errs.NewConfigError("integration key not configured"))
			return
		}

		if key != m.GHLKey {
			m.ResponseHandler.WriteError(w, r, http.StatusForbidden, "forbidden", "invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
