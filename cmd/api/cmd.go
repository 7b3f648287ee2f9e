package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hugmob/hugger-backend/internal/bootstrap"
	"github.com/hugmob/hugger-backend/internal/client/identity"
	"github.com/hugmob/hugger-backend/internal/client/push"
	"github.com/hugmob/hugger-backend/internal/config"
	"github.com/hugmob/hugger-backend/internal/handlers"
	"github.com/hugmob/hugger-backend/internal/middleware"
	"github.com/hugmob/hugger-backend/internal/response"
	"github.com/hugmob/hugger-backend/internal/router"
	"github.com/hugmob/hugger-backend/internal/services"
	"github.com/hugmob/hugger-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// local runs pick up .env; deployed envs set real variables
	godotenv.Load()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// external-service adapters
	identityGW := identity.NewAdapter(bs.Auth)
	pushGW := push.NewAdapter(bs.Messaging)

	// stores
	ustore := store.NewUserStore(bs.Firestore)

	// services
	provSvc := services.NewProvisionService(identityGW, ustore)
	lifeSvc := services.NewLifecycleService(identityGW, ustore)
	notifSvc := services.NewNotificationService(ustore, pushGW, cfg.FrontendURL)
	userSvc := services.NewUserService(ustore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.ProvisionSvc = provSvc
	deps.LifecycleSvc = lifeSvc
	deps.NotificationSvc = notifSvc
	deps.UserSvc = userSvc

	// guards
	guards := middleware.New(identityGW, ustore, cfg.GHLAPIKey, rh)

	// router
	r := router.NewRouter(deps, guards)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
