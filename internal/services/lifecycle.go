package services

import (
	"context"
	"strings"
	"time"

	"github.com/hugmob/hugger-backend/internal/client/identity"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/pkg/logger"
)

type lifecycleIdentityGateway interface {
	GetUserByEmail(ctx context.Context, email string) (*identity.Identity, error)
	SetClaims(ctx context.Context, uid string, claims map[string]any) error
}

type lifecycleProfileStore interface {
	Merge(ctx context.Context, uid string, fields map[string]any) error
}

type StatusResult struct {
	UID           string
	AccountStatus models.AccountStatus
}

type HuggerResult struct {
	UID            string
	IsTripleHugger string
}

type lifecycleService struct {
	Identity lifecycleIdentityGateway
	Profiles lifecycleProfileStore
}

func NewLifecycleService(gw lifecycleIdentityGateway, profiles lifecycleProfileStore) *lifecycleService {
	return &lifecycleService{
		Identity: gw,
		Profiles: profiles,
	}
}

// SetStatus flips accountStatus for a user identified by uid or email.
// Idempotent: repeating the same status only moves updatedAt. The merge
// write does not require the profile to pre-exist.
func (s *lifecycleService) SetStatus(ctx context.Context, uid, email string, status models.AccountStatus) (*StatusResult, error) {
	log := logger.FromContext(ctx)

	uid = strings.TrimSpace(uid)
	email = strings.TrimSpace(email)
	if uid == "" && email == "" {
		return nil, errs.NewValidationError("uid or email is required")
	}

	if uid == "" {
		ident, err := s.Identity.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		uid = ident.UID
	}

	fields := map[string]any{
		"accountStatus": string(status),
		"updatedAt":     time.Now().UTC(),
	}
	if err := s.Profiles.Merge(ctx, uid, fields); err != nil {
		return nil, err
	}

	log.Info("account status updated", "uid", uid, "status", string(status))
	return &StatusResult{UID: uid, AccountStatus: status}, nil
}

// SetHuggerFlag stores the product classification flag on the profile
// identified by email. The value is opaque here beyond Yes/No.
func (s *lifecycleService) SetHuggerFlag(ctx context.Context, email, flag string) (*HuggerResult, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.NewValidationError("email is required")
	}

	ident, err := s.Identity.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"is_triple_hugger": flag,
		"updatedAt":        time.Now().UTC(),
	}
	if err := s.Profiles.Merge(ctx, ident.UID, fields); err != nil {
		return nil, err
	}

	log.Info("hugger flag updated", "uid", ident.UID, "is_triple_hugger", flag)
	return &HuggerResult{UID: ident.UID, IsTripleHugger: flag}, nil
}

// ClearPasswordChangeRequirement overwrites the identity's custom
// claims with mustChangePassword=false. Like every claims write in
// this system, it replaces the full map.
func (s *lifecycleService) ClearPasswordChangeRequirement(ctx context.Context, uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return errs.NewValidationError("uid is required")
	}

	if err := s.Identity.SetClaims(ctx, uid, map[string]any{"mustChangePassword": false}); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("password change requirement cleared", "uid", uid)
	return nil
}
