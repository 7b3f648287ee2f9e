package bootstrap

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/hugmob/hugger-backend/internal/config"
)

func InitFirebase(ctx context.Context, cfg *config.Config, opts []option.ClientOption) (*auth.Client, *messaging.Client, error) {
	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, err
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, nil, err
	}

	return authClient, msgClient, nil
}
