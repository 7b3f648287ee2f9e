package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hugmob/hugger-backend/internal/dto"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/middleware"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/internal/response"
	"github.com/hugmob/hugger-backend/internal/services"
)

type ProvisionService interface {
	Provision(ctx context.Context, p services.ProvisionParams) (*services.ProvisionResult, error)
}

type provisionHandlers struct {
	ResponseHandler response.ResponseHandler
	ProvisionSvc    ProvisionService
}

func NewProvisionHandlers(deps *Deps) *provisionHandlers {
	return &provisionHandlers{
		ResponseHandler: deps.ResponseHandler,
		ProvisionSvc:    deps.ProvisionSvc,
	}
}

// GrantAdmin provisions (or re-tags) a user as admin. Existing
// identities are acceptable here.
func (h *provisionHandlers) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	h.provision(w, r, provisionRoute{
		Role:          models.UserTypeAdmin,
		AccountType:   models.AccountTypeAdminCreated,
		Provenance:    models.EndpointGrantAdmin,
		AllowExisting: true,
	})
}

func (h *provisionHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.provision(w, r, provisionRoute{
		Role:          models.UserTypeUser,
		AccountType:   models.AccountTypeAdminCreated,
		Provenance:    models.EndpointCreateUser,
		AllowExisting: true,
	})
}

// GHLCreateUser is the integration's strict-create path: an existing
// identity is a conflict.
func (h *provisionHandlers) GHLCreateUser(w http.ResponseWriter, r *http.Request) {
	h.provision(w, r, provisionRoute{
		Role:          models.UserTypeUser,
		AccountType:   models.AccountTypePremium,
		Provenance:    models.EndpointGHLCreateUser,
		AllowExisting: false,
	})
}

func (h *provisionHandlers) GHLCreateTrialUser(w http.ResponseWriter, r *http.Request) {
	h.provision(w, r, provisionRoute{
		Role:          models.UserTypeUser,
		AccountType:   models.AccountTypeTrial,
		Provenance:    models.EndpointGHLCreateTrialUser,
		AllowExisting: false,
	})
}

type provisionRoute struct {
	Role          models.UserType
	AccountType   models.AccountType
	Provenance    models.CreationEndpoint
	AllowExisting bool
}

func (h *provisionHandlers) provision(w http.ResponseWriter, r *http.Request, route provisionRoute) {
	var req dto.ProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	actor := middleware.Actor(r.Context())
	if actor == "" {
		// static-key routes have no caller identity
		actor = "GHL"
	}

	result, err := h.ProvisionSvc.Provision(r.Context(), services.ProvisionParams{
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		TempPassword:  req.TempPassword,
		Role:          route.Role,
		AccountType:   route.AccountType,
		Provenance:    route.Provenance,
		ActorLabel:    actor,
		AllowExisting: route.AllowExisting,
	})
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.ProvisionResponse{
		Success:      true,
		UID:          result.UID,
		Email:        result.Email,
		TempPassword: result.TempPassword,
	})
}
