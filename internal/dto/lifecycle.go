package dto

// StatusRequest identifies a user by uid or email. At least one must be
// present; that cross-field rule lives in the service, not the tags.
type StatusRequest struct {
	UID   string `json:"uid" validate:"omitempty"`
	Email string `json:"email" validate:"omitempty,email"`
}

type StatusResponse struct {
	Success       bool   `json:"success"`
	UID           string `json:"uid"`
	AccountStatus string `json:"accountStatus"`
}

type HuggerRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type HuggerResponse struct {
	Success        bool   `json:"success"`
	UID            string `json:"uid"`
	IsTripleHugger string `json:"is_triple_hugger"`
}

type ClearPasswordRequirementRequest struct {
	UID string `json:"uid" validate:"required"`
}

type ClearPasswordRequirementResponse struct {
	Success bool   `json:"success"`
	UID     string `json:"uid"`
}
