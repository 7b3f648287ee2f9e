package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hugmob/hugger-backend/internal/client/identity"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/models"
)

// RequireAdmin authenticates the bearer token against the identity
// provider, then authorizes against the caller's profile: the profile
// must exist and carry userType=admin. The resolved actor name is
// attached to the context for downstream createdBy provenance.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.ResponseHandler.WriteError(w, r, http.StatusUnauthorized, "unauthorized", "missing Authorization header")
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.ResponseHandler.WriteError(w, r, http.StatusUnauthorized, "unauthorized", "invalid Authorization header")
			return
		}

		claims, err := m.Identity.VerifyToken(r.Context(), parts[1])
		if err != nil {
			m.ResponseHandler.HandleError(w, r, err)
			return
		}

		profile, err := m.Profiles.Get(r.Context(), claims.UID)
		if err != nil {
			if _, ok := err.(*errs.NotFoundError); ok {
				m.ResponseHandler.WriteError(w, r, http.StatusForbidden, "forbidden", "admin access required")
				return
			}
			m.ResponseHandler.HandleError(w, r, err)
			return
		}

		if profile.UserType != models.UserTypeAdmin {
			m.ResponseHandler.WriteError(w, r, http.StatusForbidden, "forbidden", "admin access required")
			return
		}

		ctx := context.WithValue(r.Context(), UIDKey, claims.UID)
		ctx = context.WithValue(ctx, ActorKey, actorName(profile, claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorName resolves the label recorded as createdBy: profile display
// name, then first+last, then token name or email, then "Admin".
func actorName(profile *models.User, claims *identity.TokenClaims) string {
	if profile.DisplayName != "" {
		return profile.DisplayName
	}
	if name := strings.TrimSpace(profile.FirstName + " " + profile.LastName); name != "" {
		return name
	}
	if claims.Name != "" {
		return claims.Name
	}
	if claims.Email != "" {
		return claims.Email
	}
	return "Admin"
}
