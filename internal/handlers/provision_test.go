package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/middleware"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/internal/response"
	"github.com/hugmob/hugger-backend/internal/services"
	"github.com/hugmob/hugger-backend/pkg/logger"
)

type stubProvisionService struct {
	calls  int
	params services.ProvisionParams
	result *services.ProvisionResult
	err    error
}

func (s *stubProvisionService) Provision(_ context.Context, p services.ProvisionParams) (*services.ProvisionResult, error) {
	s.calls++
	s.params = p
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func testDeps(svc *stubProvisionService) *Deps {
	log := logger.New("", logger.NewTestHandler)
	return &Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		ProvisionSvc:    svc,
	}
}

func TestProvisionInvalidJSON(t *testing.T) {
	svc := &stubProvisionService{}
	h := NewProvisionHandlers(testDeps(svc))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/create-user", strings.NewReader("{not json"))

	h.CreateUser(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("service called despite a bad body")
	}
}

func TestProvisionValidationShortCircuit(t *testing.T) {
	svc := &stubProvisionService{}
	h := NewProvisionHandlers(testDeps(svc))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/create-user", strings.NewReader(`{"email":"not-an-email"}`))

	h.CreateUser(rr, req)

	if rr.Code != http.StatusBadRequest || svc.calls != 0 {
		t.Fatalf("expected 400 without a service call, got %d (%d calls)", rr.Code, svc.calls)
	}
}

func TestGrantAdminRouteParams(t *testing.T) {
	svc := &stubProvisionService{result: &services.ProvisionResult{UID: "uid-1", Email: "a@b.co"}}
	h := NewProvisionHandlers(testDeps(svc))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/grant-admin", strings.NewReader(`{"email":"a@b.co"}`))
	ctx := context.WithValue(req.Context(), middleware.ActorKey, "Jane Admin")
	req = req.WithContext(ctx)

	h.GrantAdmin(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	p := svc.params
	if p.Role != models.UserTypeAdmin || p.AccountType != models.AccountTypeAdminCreated {
		t.Fatalf("unexpected role mapping: %+v", p)
	}
	if p.Provenance != models.EndpointGrantAdmin || !p.AllowExisting {
		t.Fatalf("unexpected route parameters: %+v", p)
	}
	if p.ActorLabel != "Jane Admin" {
		t.Fatalf("actor not taken from context: %s", p.ActorLabel)
	}
}

func TestGHLCreateUserDefaultsActor(t *testing.T) {
	svc := &stubProvisionService{result: &services.ProvisionResult{UID: "uid-1", Email: "a@b.co", TempPassword: "Temp123456"}}
	h := NewProvisionHandlers(testDeps(svc))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ghl/create-user", strings.NewReader(`{"email":"a@b.co"}`))

	h.GHLCreateUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	p := svc.params
	if p.ActorLabel != "GHL" {
		t.Fatalf("static-key route should default the actor: %s", p.ActorLabel)
	}
	if p.AccountType != models.AccountTypePremium || p.AllowExisting {
		t.Fatalf("unexpected route parameters: %+v", p)
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["tempPassword"] != "Temp123456" {
		t.Fatalf("temp password not echoed: %v", resp)
	}
}

func TestGHLCreateTrialUserRouteParams(t *testing.T) {
	svc := &stubProvisionService{result: &services.ProvisionResult{UID: "uid-1", Email: "a@b.co"}}
	h := NewProvisionHandlers(testDeps(svc))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ghl/create-trial-user", strings.NewReader(`{"email":"a@b.co"}`))

	h.GHLCreateTrialUser(rr, req)

	p := svc.params
	if p.AccountType != models.AccountTypeTrial || p.Provenance != models.EndpointGHLCreateTrialUser || p.AllowExisting {
		t.Fatalf("unexpected route parameters: %+v", p)
	}
}

func TestProvisionConflictResponse(t *testing.T) {
	svc := &stubProvisionService{err: errs.NewConflictError("user already exists", "uid-existing")}
	h := NewProvisionHandlers(testDeps(svc))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ghl/create-user", strings.NewReader(`{"email":"a@b.co"}`))

	h.GHLCreateUser(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["uid"] != "uid-existing" {
		t.Fatalf("conflict body missing existing uid: %v", resp)
	}
}
