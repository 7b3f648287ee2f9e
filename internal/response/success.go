package response

import (
	"encoding/json"
	"net/http"

	"github.com/hugmob/hugger-backend/pkg/logger"
)

func (h *responseHandler) WriteJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are gone; all we can do is log it.
		log := logger.FromContext(r.Context())
		log.Error("failed to encode response", "error", err, "status", status)
	}
}
