package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/hugmob/hugger-backend/pkg/logger"
)

// Recover converts panics into the generic JSON 500 instead of letting
// the connection drop.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromContext(r.Context())
				log.Error("panic recovered", "panic", rec, "stack", string(debug.Stack()))
				m.ResponseHandler.WriteError(w, r, http.StatusInternalServerError, "internal_error",
					"An unexpected error occurred")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
