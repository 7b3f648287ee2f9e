package services

import (
	"context"

	"github.com/hugmob/hugger-backend/internal/models"
)

type userProfileStore interface {
	Get(ctx context.Context, uid string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

type userService struct {
	Store userProfileStore
}

func NewUserService(store userProfileStore) *userService {
	return &userService{Store: store}
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.Store.List(ctx)
}

func (s *userService) Get(ctx context.Context, uid string) (*models.User, error) {
	return s.Store.Get(ctx, uid)
}
