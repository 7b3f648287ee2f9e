package handlers

import (
	"log/slog"

	"github.com/hugmob/hugger-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ProvisionSvc    ProvisionService
	LifecycleSvc    LifecycleService
	NotificationSvc NotificationService
	UserSvc         UserService
}
