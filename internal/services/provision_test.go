package services

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/hugmob/hugger-backend/internal/client/identity"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/pkg/helpers"
	"github.com/hugmob/hugger-backend/pkg/password"
)

type stubIdentityGateway struct {
	existing map[string]*identity.Identity

	lookupCalls   int
	createCalls   int
	passwordCalls int
	claimsCalls   int

	createdEmail    string
	createdPassword string
	updatedPassword string
	claimsUID       string
	claims          map[string]any

	createErr error
	lookupErr error
	claimsErr error
}

func (s *stubIdentityGateway) GetUserByEmail(_ context.Context, email string) (*identity.Identity, error) {
	s.lookupCalls++
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	if ident, ok := s.existing[email]; ok {
		return ident, nil
	}
	return nil, errs.NewNotFoundError("no user found for email " + email)
}

func (s *stubIdentityGateway) CreateUser(_ context.Context, email, pw string) (*identity.Identity, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.createdEmail = email
	s.createdPassword = pw
	return &identity.Identity{UID: "uid-new", Email: email}, nil
}

func (s *stubIdentityGateway) UpdatePassword(_ context.Context, _, pw string) error {
	s.passwordCalls++
	s.updatedPassword = pw
	return nil
}

func (s *stubIdentityGateway) SetClaims(_ context.Context, uid string, claims map[string]any) error {
	s.claimsCalls++
	s.claimsUID = uid
	s.claims = claims
	return s.claimsErr
}

type stubProfileStore struct {
	mergeCalls int
	uid        string
	fields     map[string]any
	err        error
}

func (s *stubProfileStore) Merge(_ context.Context, uid string, fields map[string]any) error {
	s.mergeCalls++
	s.uid = uid
	s.fields = fields
	return s.err
}

func TestProvisionNewUser(t *testing.T) {
	gw := &stubIdentityGateway{}
	profiles := &stubProfileStore{}
	svc := NewProvisionService(gw, profiles)

	result, err := svc.Provision(helpers.TestCtx(), ProvisionParams{
		Email:         "new@example.com",
		Role:          models.UserTypeAdmin,
		AccountType:   models.AccountTypeAdminCreated,
		Provenance:    models.EndpointGrantAdmin,
		ActorLabel:    "Root Admin",
		AllowExisting: true,
	})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}

	if gw.createCalls != 1 {
		t.Fatalf("CreateUser called %d times, want 1", gw.createCalls)
	}
	if gw.createdEmail != "new@example.com" {
		t.Fatalf("identity created with wrong email: %s", gw.createdEmail)
	}
	if len(gw.createdPassword) != password.TempLength {
		t.Fatalf("generated password length %d, want %d", len(gw.createdPassword), password.TempLength)
	}

	if gw.claimsCalls != 1 || gw.claimsUID != "uid-new" {
		t.Fatalf("claims not written for new identity")
	}
	if must, ok := gw.claims["mustChangePassword"].(bool); !ok || !must {
		t.Fatalf("mustChangePassword claim not set: %v", gw.claims)
	}

	if profiles.mergeCalls != 1 || profiles.uid != "uid-new" {
		t.Fatalf("profile merge not written: calls=%d uid=%s", profiles.mergeCalls, profiles.uid)
	}

	fields := profiles.fields
	if fields["userType"] != "admin" || fields["accountType"] != "Admin-Created" {
		t.Fatalf("unexpected role fields: %v", fields)
	}
	if fields["accountStatus"] != "Active" {
		t.Fatalf("new profile not Active: %v", fields["accountStatus"])
	}
	if fields["creationEndpoint"] != "grant_admin" || fields["createdBy"] != "Root Admin" {
		t.Fatalf("provenance fields wrong: %v", fields)
	}
	if fields["createdAt"] != firestore.ServerTimestamp {
		t.Fatalf("createdAt missing on new-identity branch")
	}
	if fields["tempPassword"] != gw.createdPassword {
		t.Fatalf("tempPassword field does not match created credential")
	}
	if _, ok := fields["passwordGeneratedAt"]; !ok {
		t.Fatalf("passwordGeneratedAt missing when password was generated")
	}

	if result.UID != "uid-new" || result.TempPassword != gw.createdPassword {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestProvisionNewUserCallerPassword(t *testing.T) {
	gw := &stubIdentityGateway{}
	profiles := &stubProfileStore{}
	svc := NewProvisionService(gw, profiles)

	result, err := svc.Provision(helpers.TestCtx(), ProvisionParams{
		Email:         "new@example.com",
		TempPassword:  "Caller1234",
		Role:          models.UserTypeUser,
		AccountType:   models.AccountTypePremium,
		Provenance:    models.EndpointGHLCreateUser,
		ActorLabel:    "GHL",
		AllowExisting: false,
	})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}

	if gw.createdPassword != "Caller1234" {
		t.Fatalf("caller-supplied password not used: %s", gw.createdPassword)
	}
	if result.TempPassword != "Caller1234" {
		t.Fatalf("result does not echo caller password: %s", result.TempPassword)
	}
}

func TestProvisionExistingConflict(t *testing.T) {
	gw := &stubIdentityGateway{
		existing: map[string]*identity.Identity{
			"known@example.com": {UID: "uid-1", Email: "known@example.com"},
		},
	}
	profiles := &stubProfileStore{}
	svc := NewProvisionService(gw, profiles)

	_, err := svc.Provision(helpers.TestCtx(), ProvisionParams{
		Email:         "known@example.com",
		Role:          models.UserTypeUser,
		AccountType:   models.AccountTypePremium,
		Provenance:    models.EndpointGHLCreateUser,
		AllowExisting: false,
	})

	var conflict *errs.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.UID != "uid-1" {
		t.Fatalf("conflict does not carry existing uid: %s", conflict.UID)
	}

	if gw.createCalls != 0 || gw.passwordCalls != 0 || gw.claimsCalls != 0 {
		t.Fatalf("identity writes performed on conflict")
	}
	if profiles.mergeCalls != 0 {
		t.Fatalf("profile write performed on conflict")
	}
}

func TestProvisionExistingUpdate(t *testing.T) {
	gw := &stubIdentityGateway{
		existing: map[string]*identity.Identity{
			"known@example.com": {UID: "uid-1", Email: "known@example.com", DisplayName: "Known User"},
		},
	}
	profiles := &stubProfileStore{}
	svc := NewProvisionService(gw, profiles)

	result, err := svc.Provision(helpers.TestCtx(), ProvisionParams{
		Email:         "known@example.com",
		Role:          models.UserTypeAdmin,
		AccountType:   models.AccountTypeAdminCreated,
		Provenance:    models.EndpointGrantAdmin,
		ActorLabel:    "Root Admin",
		AllowExisting: true,
	})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}

	if gw.createCalls != 0 || gw.passwordCalls != 0 {
		t.Fatalf("identity should not be created or rotated without a caller password")
	}
	if profiles.mergeCalls != 1 {
		t.Fatalf("profile merge called %d times, want 1", profiles.mergeCalls)
	}

	fields := profiles.fields
	if _, ok := fields["createdAt"]; ok {
		t.Fatalf("createdAt must not be written for an existing identity")
	}
	if _, ok := fields["tempPassword"]; ok {
		t.Fatalf("tempPassword must not be written without generation or rotation")
	}
	if fields["displayName"] != "Known User" {
		t.Fatalf("displayName should fall back to the identity's: %v", fields["displayName"])
	}
	if result.TempPassword != "" {
		t.Fatalf("result should carry no password: %q", result.TempPassword)
	}
}

func TestProvisionExistingPasswordRotation(t *testing.T) {
	gw := &stubIdentityGateway{
		existing: map[string]*identity.Identity{
			"known@example.com": {UID: "uid-1", Email: "known@example.com"},
		},
	}
	profiles := &stubProfileStore{}
	svc := NewProvisionService(gw, profiles)

	result, err := svc.Provision(helpers.TestCtx(), ProvisionParams{
		Email:         "known@example.com",
		TempPassword:  "Rotated123",
		Role:          models.UserTypeUser,
		AccountType:   models.AccountTypeAdminCreated,
		Provenance:    models.EndpointCreateUser,
		ActorLabel:    "Root Admin",
		AllowExisting: true,
	})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}

	if gw.passwordCalls != 1 || gw.updatedPassword != "Rotated123" {
		t.Fatalf("password not rotated: calls=%d pw=%s", gw.passwordCalls, gw.updatedPassword)
	}
	if profiles.fields["tempPassword"] != "Rotated123" {
		t.Fatalf("rotated password not recorded on profile")
	}
	if result.TempPassword != "Rotated123" {
		t.Fatalf("result should echo rotated password: %q", result.TempPassword)
	}
}

func TestProvisionInvalidEmail(t *testing.T) {
	for _, email := range []string{"", "   ", "not-an-email", "missing@tld"} {
		gw := &stubIdentityGateway{}
		profiles := &stubProfileStore{}
		svc := NewProvisionService(gw, profiles)

		_, err := svc.Provision(helpers.TestCtx(), ProvisionParams{
			Email: email,
			Role:  models.UserTypeUser,
		})

		var verr *errs.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("email %q: expected ValidationError, got %v", email, err)
		}
		if gw.lookupCalls != 0 || profiles.mergeCalls != 0 {
			t.Fatalf("email %q: external calls made before validation", email)
		}
	}
}

func TestProvisionNameHandling(t *testing.T) {
	gw := &stubIdentityGateway{}
	profiles := &stubProfileStore{}
	svc := NewProvisionService(gw, profiles)

	_, err := svc.Provision(helpers.TestCtx(), ProvisionParams{
		Email:         "new@example.com",
		FirstName:     "  Jane ",
		LastName:      "",
		Role:          models.UserTypeUser,
		AccountType:   models.AccountTypeTrial,
		Provenance:    models.EndpointGHLCreateTrialUser,
		AllowExisting: false,
	})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}

	fields := profiles.fields
	if fields["firstName"] != "Jane" {
		t.Fatalf("firstName not trimmed: %v", fields["firstName"])
	}
	if _, ok := fields["lastName"]; ok {
		t.Fatalf("empty lastName must be omitted, not stored")
	}
	if fields["displayName"] != "Jane" {
		t.Fatalf("unexpected displayName: %v", fields["displayName"])
	}
}

func TestProvisionProfileWriteFailure(t *testing.T) {
	gw := &stubIdentityGateway{}
	profiles := &stubProfileStore{err: errors.New("store down")}
	svc := NewProvisionService(gw, profiles)

	_, err := svc.Provision(helpers.TestCtx(), ProvisionParams{
		Email:         "new@example.com",
		Role:          models.UserTypeUser,
		AccountType:   models.AccountTypePremium,
		Provenance:    models.EndpointGHLCreateUser,
		AllowExisting: false,
	})
	if err == nil {
		t.Fatalf("expected error when profile write fails")
	}

	// no compensation: the identity write stands
	if gw.createCalls != 1 {
		t.Fatalf("identity create should have happened before the failure")
	}
}
