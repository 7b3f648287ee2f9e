package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"github.com/hugmob/hugger-backend/internal/errs"
)

// Identity is the slice of the provider's user record this service
// cares about.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// TokenClaims holds the verified claims of a bearer token.
type TokenClaims struct {
	UID   string
	Email string
	Name  string
}

// Adapter wraps the Firebase Auth client. All provider failures are
// mapped into the local error taxonomy here so nothing above this
// layer sees SDK error types.
type Adapter struct {
	Client *auth.Client
}

func NewAdapter(client *auth.Client) *Adapter {
	return &Adapter{Client: client}
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*Identity, error) {
	rec, err := a.Client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, errs.NewNotFoundError("no user found for email " + email)
		}
		return nil, errs.NewExternalServiceError("identity", err.Error())
	}
	return fromRecord(rec), nil
}

func (a *Adapter) CreateUser(ctx context.Context, email, password string) (*Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	rec, err := a.Client.CreateUser(ctx, params)
	if err != nil {
		return nil, errs.NewExternalServiceError("identity", err.Error())
	}
	return fromRecord(rec), nil
}

func (a *Adapter) UpdatePassword(ctx context.Context, uid, password string) error {
	params := (&auth.UserToUpdate{}).Password(password)

	if _, err := a.Client.UpdateUser(ctx, uid, params); err != nil {
		return errs.NewExternalServiceError("identity", err.Error())
	}
	return nil
}

// SetClaims replaces the full custom-claims map on the identity. The
// provider has no merge operation; callers own the whole map.
func (a *Adapter) SetClaims(ctx context.Context, uid string, claims map[string]any) error {
	if err := a.Client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return errs.NewExternalServiceError("identity", err.Error())
	}
	return nil
}

func (a *Adapter) VerifyToken(ctx context.Context, token string) (*TokenClaims, error) {
	t, err := a.Client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errs.NewUnauthorizedError("invalid or expired token")
	}

	claims := &TokenClaims{UID: t.UID}
	if email, ok := t.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := t.Claims["name"].(string); ok {
		claims.Name = name
	}
	return claims, nil
}

func fromRecord(rec *auth.UserRecord) *Identity {
	return &Identity{
		UID:         rec.UID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
	}
}
