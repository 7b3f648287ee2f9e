package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/pkg/logger"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	// UID is set on conflicts so callers learn the existing identity.
	UID string `json:"uid,omitempty"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.UnauthorizedError:
		log.Warn("unauthorized", "error", e.Message)
		h.WriteError(w, r, http.StatusUnauthorized, "unauthorized", e.Message)

	case *errs.ForbiddenError:
		log.Warn("forbidden", "error", e.Message)
		h.WriteError(w, r, http.StatusForbidden, "forbidden", e.Message)

	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.ConflictError:
		log.Warn("resource already exists", "error", e.Message, "uid", e.UID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		if encErr := json.NewEncoder(w).Encode(ErrorResponse{
			Success: false,
			Error:   e.Message,
			Code:    "already_exists",
			UID:     e.UID,
		}); encErr != nil {
			log.Error("failed to encode error response", "error", encErr)
		}

	case *errs.ConfigError:
		log.Error("configuration error", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "configuration_error",
			"Server configuration error")

	case *errs.ExternalServiceError:
		log.Error("external service error",
			"service", e.Service,
			"transient", e.Transient,
			"error", e.Message)

		status := http.StatusBadGateway
		if e.Transient {
			status = http.StatusServiceUnavailable
		}
		h.WriteError(w, r, status, "service_unavailable", e.Message)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
