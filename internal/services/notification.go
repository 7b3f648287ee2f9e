package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hugmob/hugger-backend/internal/client/push"
	"github.com/hugmob/hugger-backend/internal/dto"
	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/models"
	"github.com/hugmob/hugger-backend/pkg/logger"
)

type notificationProfileStore interface {
	List(ctx context.Context) ([]*models.User, error)
	ListByType(ctx context.Context, userType models.UserType) ([]*models.User, error)
	GetByUIDs(ctx context.Context, uids []string) ([]*models.User, error)
}

type pushGateway interface {
	SendToToken(ctx context.Context, token string, p push.Payload) error
}

type DispatchResult struct {
	MessageID string
	Stats     dto.DispatchStats
}

type notificationService struct {
	Profiles    notificationProfileStore
	Push        pushGateway
	FrontendURL string
}

func NewNotificationService(profiles notificationProfileStore, gw pushGateway, frontendURL string) *notificationService {
	return &notificationService{
		Profiles:    profiles,
		Push:        gw,
		FrontendURL: frontendURL,
	}
}

// Send resolves the audience to device tokens and fans the payload out
// to every token concurrently. Individual send failures are counted and
// logged, never propagated; only an empty audience is surfaced, as a
// NoRecipientsError.
func (s *notificationService) Send(ctx context.Context, req dto.SendNotificationRequest) (*DispatchResult, error) {
	log := logger.FromContext(ctx)

	audience, err := s.resolveAudience(ctx, req.TargetType, req.TargetUsers)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(audience))
	for _, user := range audience {
		if user.FCMToken != "" {
			tokens = append(tokens, user.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return nil, errs.NewNoRecipientsError()
	}

	payload := push.Payload{
		Title: req.Title,
		Body:  req.Body,
		Icon:  req.Icon,
		Badge: req.Badge,
		Link:  s.FrontendURL,
		Data:  req.Data,
	}

	messageID := fmt.Sprintf("batch-%d", time.Now().UnixMilli())

	// Every token gets its own send; all outcomes are awaited, siblings
	// are never cancelled on failure.
	results := make([]error, len(tokens))
	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			results[i] = s.Push.SendToToken(ctx, token, payload)
		}(i, token)
	}
	wg.Wait()

	stats := dto.DispatchStats{Total: len(tokens)}
	for i, err := range results {
		if err != nil {
			stats.Failed++
			// token prefix only; full tokens stay out of the logs
			log.Warn("push send failed", "token", tokenPrefix(tokens[i]), "error", err)
			continue
		}
		stats.Successful++
	}

	log.Info("notification batch dispatched",
		"message_id", messageID,
		"total", stats.Total,
		"successful", stats.Successful,
		"failed", stats.Failed)

	return &DispatchResult{MessageID: messageID, Stats: stats}, nil
}

// Stats summarizes the user base for the dashboard.
func (s *notificationService) Stats(ctx context.Context) (*dto.NotificationStatsResponse, error) {
	users, err := s.Profiles.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.NotificationStatsResponse{Success: true, TotalUsers: len(users)}
	for _, user := range users {
		if user.FCMToken != "" {
			stats.UsersWithNotifications++
		}
		if user.UserType == models.UserTypeAdmin {
			stats.Admins++
		} else {
			stats.RegularUsers++
		}
	}
	return stats, nil
}

// resolveAudience picks profiles for a dispatch. An explicit uid list
// wins over the type filter; "all" (or no filter) means everyone.
func (s *notificationService) resolveAudience(ctx context.Context, targetType string, targetUsers []string) ([]*models.User, error) {
	if len(targetUsers) > 0 {
		return s.Profiles.GetByUIDs(ctx, targetUsers)
	}

	switch targetType {
	case "", "all":
		return s.Profiles.List(ctx)
	case "admin":
		return s.Profiles.ListByType(ctx, models.UserTypeAdmin)
	case "user":
		return s.Profiles.ListByType(ctx, models.UserTypeUser)
	default:
		return nil, errs.NewValidationError("unknown targetType " + targetType)
	}
}

func tokenPrefix(token string) string {
	if len(token) > 12 {
		return token[:12] + "..."
	}
	return token
}
