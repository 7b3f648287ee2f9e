package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"

	"github.com/hugmob/hugger-backend/internal/config"
	"github.com/hugmob/hugger-backend/pkg/logger"
)

// Bootstrap holds the process-lifetime clients. Built once at startup,
// shared read-only afterwards.
type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Auth      *auth.Client
	Messaging *messaging.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)

	opts := credentialOptions(cfg)

	bs.Auth, bs.Messaging, err = InitFirebase(applicationCtx, cfg, opts)
	if err != nil {
		return bs, err
	}

	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID, opts)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		bs.Firestore.Close()
	}
}
