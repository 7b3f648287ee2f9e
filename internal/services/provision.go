package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/hugmob/hugger-backend/internal/client/identity"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/pkg/logger"
	"github.com/hugmob/hugger-backend/pkg/password"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type provisionIdentityGateway interface {
	GetUserByEmail(ctx context.Context, email string) (*identity.Identity, error)
	CreateUser(ctx context.Context, email, password string) (*identity.Identity, error)
	UpdatePassword(ctx context.Context, uid, password string) error
	SetClaims(ctx context.Context, uid string, claims map[string]any) error
}

type provisionProfileStore interface {
	Merge(ctx context.Context, uid string, fields map[string]any) error
}

// ProvisionParams describes one create-or-update request. The caller
// decides role, account type, provenance and whether a pre-existing
// identity is acceptable.
type ProvisionParams struct {
	Email         string
	FirstName     string
	LastName      string
	TempPassword  string
	Role          models.UserType
	AccountType   models.AccountType
	Provenance    models.CreationEndpoint
	ActorLabel    string
	AllowExisting bool
}

type ProvisionResult struct {
	UID          string
	Email        string
	TempPassword string
}

type provisionService struct {
	Identity provisionIdentityGateway
	Profiles provisionProfileStore
}

func NewProvisionService(gw provisionIdentityGateway, profiles provisionProfileStore) *provisionService {
	return &provisionService{
		Identity: gw,
		Profiles: profiles,
	}
}

// Provision guarantees an identity + profile pair exists for the email.
// The two writes (identity provider, then profile merge) are sequential
// and not atomic together; a profile-write failure after identity
// creation leaves an identity with no profile.
func (s *provisionService) Provision(ctx context.Context, p ProvisionParams) (*ProvisionResult, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(p.Email)
	if email == "" || !emailRx.MatchString(email) {
		return nil, errs.NewValidationError("a valid email is required")
	}

	ident, err := s.Identity.GetUserByEmail(ctx, email)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); !ok {
			return nil, err
		}
		ident = nil
	}

	var tempPassword string
	newIdentity := false
	passwordSet := false

	if ident == nil {
		tempPassword = p.TempPassword
		if tempPassword == "" {
			tempPassword, err = password.Generate(password.TempLength)
			if err != nil {
				return nil, err
			}
		}

		ident, err = s.Identity.CreateUser(ctx, email, tempPassword)
		if err != nil {
			return nil, err
		}
		newIdentity = true
		passwordSet = true
		log.Info("identity created", "uid", ident.UID, "endpoint", string(p.Provenance))
	} else {
		if !p.AllowExisting {
			log.Warn("identity already exists", "uid", ident.UID)
			return nil, errs.NewConflictError("user already exists for email "+email, ident.UID)
		}

		// Only path that rotates a credential on an existing identity.
		if p.TempPassword != "" {
			if err := s.Identity.UpdatePassword(ctx, ident.UID, p.TempPassword); err != nil {
				return nil, err
			}
			tempPassword = p.TempPassword
			passwordSet = true
			log.Info("password rotated", "uid", ident.UID)
		}
	}

	// Full overwrite of custom claims, matching the provider's API.
	if err := s.Identity.SetClaims(ctx, ident.UID, map[string]any{"mustChangePassword": true}); err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if displayName == "" {
		displayName = ident.DisplayName
	}

	now := time.Now().UTC()
	fields := map[string]any{
		"uid":              ident.UID,
		"email":            email,
		"userType":         string(p.Role),
		"accountType":      string(p.AccountType),
		"accountStatus":    string(models.StatusActive),
		"creationEndpoint": string(p.Provenance),
		"createdBy":        p.ActorLabel,
		"updatedAt":        now,
	}
	if v := strings.TrimSpace(p.FirstName); v != "" {
		fields["firstName"] = v
	}
	if v := strings.TrimSpace(p.LastName); v != "" {
		fields["lastName"] = v
	}
	if displayName != "" {
		fields["displayName"] = displayName
	}
	if passwordSet {
		fields["tempPassword"] = tempPassword
		fields["passwordGeneratedAt"] = now
	}
	if newIdentity {
		// write-once: only ever included when the identity did not exist
		fields["createdAt"] = firestore.ServerTimestamp
	}

	if err := s.Profiles.Merge(ctx, ident.UID, fields); err != nil {
		log.Error("profile write failed after identity write", "uid", ident.UID, "error", err)
		return nil, err
	}

	log.Info("user provisioned",
		"uid", ident.UID,
		"role", string(p.Role),
		"endpoint", string(p.Provenance),
		"new_identity", newIdentity)

	result := &ProvisionResult{UID: ident.UID, Email: email}
	if passwordSet {
		result.TempPassword = tempPassword
	}
	return result, nil
}
