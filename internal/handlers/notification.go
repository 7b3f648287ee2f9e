package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hugmob/hugger-backend/internal/dto"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/response"
	"github.com/hugmob/hugger-backend/internal/services"
)

type NotificationService interface {
	Send(ctx context.Context, req dto.SendNotificationRequest) (*services.DispatchResult, error)
	Stats(ctx context.Context) (*dto.NotificationStatsResponse, error)
}

type notificationHandlers struct {
	ResponseHandler response.ResponseHandler
	NotificationSvc NotificationService
}

func NewNotificationHandlers(deps *Deps) *notificationHandlers {
	return &notificationHandlers{
		ResponseHandler: deps.ResponseHandler,
		NotificationSvc: deps.NotificationSvc,
	}
}

func (h *notificationHandlers) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req dto.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	result, err := h.NotificationSvc.Send(r.Context(), req)
	if err != nil {
		// zero recipients is an outcome, not a request failure
		var noRecipients *errs.NoRecipientsError
		if errors.As(err, &noRecipients) {
			h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.SendFailureResponse{
				Success: false,
				Error:   noRecipients.Message,
			})
			return
		}
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.SendNotificationResponse{
		Success:   true,
		MessageID: result.MessageID,
		Stats:     result.Stats,
	})
}

func (h *notificationHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.NotificationSvc.Stats(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, stats)
}
