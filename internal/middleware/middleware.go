package middleware

import (
	"context"

	"github.com/hugmob/hugger-backend/internal/client/identity"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/internal/response"
)

type tokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*identity.TokenClaims, error)
}

type profileLoader interface {
	Get(ctx context.Context, uid string) (*models.User, error)
}

// Middleware holds the per-route guards. Both guards are stateless;
// every request is authorized from scratch.
type Middleware struct {
	Identity        tokenVerifier
	Profiles        profileLoader
	GHLKey          string
	ResponseHandler response.ResponseHandler
}

func New(verifier tokenVerifier, profiles profileLoader, ghlKey string, rh response.ResponseHandler) *Middleware {
	return &Middleware{
		Identity:        verifier,
		Profiles:        profiles,
		GHLKey:          ghlKey,
		ResponseHandler: rh,
	}
}

type contextKey string

const (
	UIDKey   contextKey = "uid"
	ActorKey contextKey = "actor"
)

// UID returns the authenticated caller's uid, if any.
func UID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}

// Actor returns the caller's resolved display name for provenance
// labeling, if any.
func Actor(ctx context.Context) string {
	actor, _ := ctx.Value(ActorKey).(string)
	return actor
}
