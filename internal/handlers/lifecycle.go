package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hugmob/hugger-backend/internal/dto"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/internal/response"
	"github.com/hugmob/hugger-backend/internal/services"
)

type LifecycleService interface {
	SetStatus(ctx context.Context, uid, email string, status models.AccountStatus) (*services.StatusResult, error)
	SetHuggerFlag(ctx context.Context, email, flag string) (*services.HuggerResult, error)
	ClearPasswordChangeRequirement(ctx context.Context, uid string) error
}

type lifecycleHandlers struct {
	ResponseHandler response.ResponseHandler
	LifecycleSvc    LifecycleService
}

func NewLifecycleHandlers(deps *Deps) *lifecycleHandlers {
	return &lifecycleHandlers{
		ResponseHandler: deps.ResponseHandler,
		LifecycleSvc:    deps.LifecycleSvc,
	}
}

func (h *lifecycleHandlers) MakeActive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusActive)
}

func (h *lifecycleHandlers) MakeInactive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusInactive)
}

func (h *lifecycleHandlers) setStatus(w http.ResponseWriter, r *http.Request, status models.AccountStatus) {
	var req dto.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	result, err := h.LifecycleSvc.SetStatus(r.Context(), req.UID, req.Email, status)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.StatusResponse{
		Success:       true,
		UID:           result.UID,
		AccountStatus: string(result.AccountStatus),
	})
}

func (h *lifecycleHandlers) MakeTripleHugger(w http.ResponseWriter, r *http.Request) {
	h.setHuggerFlag(w, r, models.HuggerYes)
}

func (h *lifecycleHandlers) MakeDoubleHugger(w http.ResponseWriter, r *http.Request) {
	h.setHuggerFlag(w, r, models.HuggerNo)
}

func (h *lifecycleHandlers) setHuggerFlag(w http.ResponseWriter, r *http.Request, flag string) {
	var req dto.HuggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	result, err := h.LifecycleSvc.SetHuggerFlag(r.Context(), req.Email, flag)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.HuggerResponse{
		Success:        true,
		UID:            result.UID,
		IsTripleHugger: result.IsTripleHugger,
	})
}

func (h *lifecycleHandlers) ClearPasswordRequirement(w http.ResponseWriter, r *http.Request) {
	var req dto.ClearPasswordRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if err := h.LifecycleSvc.ClearPasswordChangeRequirement(r.Context(), req.UID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.ClearPasswordRequirementResponse{
		Success: true,
		UID:     req.UID,
	})
}
