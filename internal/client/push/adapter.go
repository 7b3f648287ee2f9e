package push

import (
	"context"

	"firebase.google.com/go/v4/messaging"

	"github.com/hugmob/hugger-backend/internal/errs"
)

// Payload is one push notification, independent of the wire format.
type Payload struct {
	Title string
	Body  string
	Icon  string
	Badge string
	Link  string
	Data  map[string]string
}

// Adapter wraps the FCM client for single-token sends.
type Adapter struct {
	Client *messaging.Client
}

func NewAdapter(client *messaging.Client) *Adapter {
	return &Adapter{Client: client}
}

func (a *Adapter) SendToToken(ctx context.Context, token string, p Payload) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data: p.Data,
	}

	if p.Icon != "" || p.Badge != "" || p.Link != "" {
		msg.Webpush = &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Icon:  p.Icon,
				Badge: p.Badge,
			},
		}
		if p.Link != "" {
			msg.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: p.Link}
		}
	}

	if _, err := a.Client.Send(ctx, msg); err != nil {
		return errs.NewExternalServiceError("messaging", err.Error())
	}
	return nil
}
