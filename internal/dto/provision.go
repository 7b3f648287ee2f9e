package dto

type ProvisionRequest struct {
	Email        string `json:"email" validate:"required,email"`
	FirstName    string `json:"firstName" validate:"omitempty,max=100"`
	LastName     string `json:"lastName" validate:"omitempty,max=100"`
	TempPassword string `json:"tempPassword" validate:"omitempty,min=6"`
}

type ProvisionResponse struct {
	Success      bool   `json:"success"`
	UID          string `json:"uid"`
	Email        string `json:"email"`
	TempPassword string `json:"tempPassword,omitempty"`
}
