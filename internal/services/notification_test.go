package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/hugmob/hugger-backend/internal/client/push"
	"github.com/hugmob/hugger-backend/internal/dto"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/pkg/helpers"
)

type stubNotificationStore struct {
	users []*models.User

	listCalls       int
	listByTypeCalls int
	listedType      models.UserType
	byUIDsCalls     int
	requestedUIDs   []string
}

func (s *stubNotificationStore) List(_ context.Context) ([]*models.User, error) {
	s.listCalls++
	return s.users, nil
}

func (s *stubNotificationStore) ListByType(_ context.Context, userType models.UserType) ([]*models.User, error) {
	s.listByTypeCalls++
	s.listedType = userType

	var out []*models.User
	for _, u := range s.users {
		if u.UserType == userType {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubNotificationStore) GetByUIDs(_ context.Context, uids []string) ([]*models.User, error) {
	s.byUIDsCalls++
	s.requestedUIDs = uids

	var out []*models.User
	for _, u := range s.users {
		for _, uid := range uids {
			if u.UID == uid {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

type stubPushGateway struct {
	mu       sync.Mutex
	tokens   []string
	failWith map[string]error
}

func (s *stubPushGateway) SendToToken(_ context.Context, token string, _ push.Payload) error {
	s.mu.Lock()
	s.tokens = append(s.tokens, token)
	s.mu.Unlock()

	if err, ok := s.failWith[token]; ok {
		return err
	}
	return nil
}

func testUsers() []*models.User {
	return []*models.User{
		{UID: "a", UserType: models.UserTypeAdmin, FCMToken: "token-a"},
		{UID: "b", UserType: models.UserTypeUser, FCMToken: "token-b"},
		{UID: "c", UserType: models.UserTypeUser, FCMToken: "token-c"},
		{UID: "d", UserType: models.UserTypeUser}, // no token
	}
}

func TestSendExplicitTargetsWin(t *testing.T) {
	store := &stubNotificationStore{users: testUsers()}
	gw := &stubPushGateway{}
	svc := NewNotificationService(store, gw, "https://app.example.com")

	_, err := svc.Send(helpers.TestCtx(), dto.SendNotificationRequest{
		Title:       "hi",
		Body:        "there",
		TargetType:  "admin",
		TargetUsers: []string{"b", "c"},
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if store.byUIDsCalls != 1 || store.listByTypeCalls != 0 || store.listCalls != 0 {
		t.Fatalf("explicit target list should bypass the type filter")
	}
	if len(store.requestedUIDs) != 2 {
		t.Fatalf("unexpected uids requested: %v", store.requestedUIDs)
	}
	if len(gw.tokens) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(gw.tokens))
	}
}

func TestSendTypeFilter(t *testing.T) {
	store := &stubNotificationStore{users: testUsers()}
	gw := &stubPushGateway{}
	svc := NewNotificationService(store, gw, "")

	result, err := svc.Send(helpers.TestCtx(), dto.SendNotificationRequest{
		Title:      "hi",
		Body:       "there",
		TargetType: "admin",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if store.listByTypeCalls != 1 || store.listedType != models.UserTypeAdmin {
		t.Fatalf("type filter not applied")
	}
	if result.Stats.Total != 1 {
		t.Fatalf("expected 1 admin send, got %d", result.Stats.Total)
	}
}

func TestSendAllSkipsTokenless(t *testing.T) {
	store := &stubNotificationStore{users: testUsers()}
	gw := &stubPushGateway{}
	svc := NewNotificationService(store, gw, "")

	result, err := svc.Send(helpers.TestCtx(), dto.SendNotificationRequest{
		Title:      "hi",
		Body:       "there",
		TargetType: "all",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	// 4 users, one without a token
	if result.Stats.Total != 3 || len(gw.tokens) != 3 {
		t.Fatalf("tokenless profiles must be dropped: %+v", result.Stats)
	}
	if !strings.HasPrefix(result.MessageID, "batch-") {
		t.Fatalf("unexpected message id: %s", result.MessageID)
	}
}

func TestSendNoRecipients(t *testing.T) {
	store := &stubNotificationStore{users: []*models.User{
		{UID: "d", UserType: models.UserTypeUser},
	}}
	gw := &stubPushGateway{}
	svc := NewNotificationService(store, gw, "")

	_, err := svc.Send(helpers.TestCtx(), dto.SendNotificationRequest{
		Title: "hi",
		Body:  "there",
	})

	var noRecipients *errs.NoRecipientsError
	if !errors.As(err, &noRecipients) {
		t.Fatalf("expected NoRecipientsError, got %v", err)
	}
	if len(gw.tokens) != 0 {
		t.Fatalf("no sends should be issued with zero tokens")
	}
}

func TestSendCountsIndividualFailures(t *testing.T) {
	store := &stubNotificationStore{users: testUsers()}
	gw := &stubPushGateway{
		failWith: map[string]error{"token-b": errors.New("unregistered")},
	}
	svc := NewNotificationService(store, gw, "")

	result, err := svc.Send(helpers.TestCtx(), dto.SendNotificationRequest{
		Title: "hi",
		Body:  "there",
	})
	if err != nil {
		t.Fatalf("individual failures must not fail the batch: %v", err)
	}

	if result.Stats.Total != 3 || result.Stats.Successful != 2 || result.Stats.Failed != 1 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	// every sibling still attempted
	if len(gw.tokens) != 3 {
		t.Fatalf("all tokens should be attempted, got %d", len(gw.tokens))
	}
}

func TestStats(t *testing.T) {
	store := &stubNotificationStore{users: testUsers()}
	svc := NewNotificationService(store, &stubPushGateway{}, "")

	stats, err := svc.Stats(helpers.TestCtx())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats.TotalUsers != 4 || stats.UsersWithNotifications != 3 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.Admins != 1 || stats.RegularUsers != 3 {
		t.Fatalf("unexpected type split: %+v", stats)
	}
}

func TestTokenPrefix(t *testing.T) {
	if got := tokenPrefix("abcdefghijklmnop"); got != "abcdefghijkl..." {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if got := tokenPrefix("short"); got != "short" {
		t.Fatalf("short tokens pass through: %s", got)
	}
}
