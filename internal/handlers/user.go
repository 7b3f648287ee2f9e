package handlers

import (
	"context"
	"net/http"

	"github.com/hugmob/hugger-backend/internal/dto"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/internal/response"
)

type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.UsersResponse{
		Success: true,
		Users:   users,
		Total:   len(users),
	})
}
