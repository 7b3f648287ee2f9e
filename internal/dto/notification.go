package dto

import (
	"github.com/hugmob/hugger-backend/internal/models"
)

type SendNotificationRequest struct {
	Title       string            `json:"title" validate:"required"`
	Body        string            `json:"body" validate:"required"`
	TargetType  string            `json:"targetType" validate:"omitempty,oneof=all admin user"`
	TargetUsers []string          `json:"targetUsers" validate:"omitempty,dive,required"`
	Icon        string            `json:"icon"`
	Badge       string            `json:"badge"`
	Data        map[string]string `json:"data"`
}

type DispatchStats struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type SendNotificationResponse struct {
	Success   bool          `json:"success"`
	MessageID string        `json:"messageId"`
	Stats     DispatchStats `json:"stats"`
}

// SendFailureResponse is the non-exceptional no-recipients outcome of
// a dispatch. It goes out with HTTP 200.
type SendFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type NotificationStatsResponse struct {
	Success                bool `json:"success"`
	TotalUsers             int  `json:"totalUsers"`
	UsersWithNotifications int  `json:"usersWithNotifications"`
	Admins                 int  `json:"admins"`
	RegularUsers           int  `json:"regularUsers"`
}

type UsersResponse struct {
	Success bool           `json:"success"`
	Users   []*models.User `json:"users"`
	Total   int            `json:"total"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
