package handlers

import (
	"net/http"
	"time"

	"github.com/hugmob/hugger-backend/internal/dto"
	"github.com/hugmob/hugger-backend/internal/response"
)

type healthHandlers struct {
	ResponseHandler response.ResponseHandler
}

func NewHealthHandlers(deps *Deps) *healthHandlers {
	return &healthHandlers{ResponseHandler: deps.ResponseHandler}
}

func (h *healthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
