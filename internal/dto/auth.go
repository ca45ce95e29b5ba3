package dto

// LoginRequest authenticates the admin account.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// VerifyRequest checks a session token.
type VerifyRequest struct {
	Token string `json:"token"`
}

// VerifyResponse reports token validity; username is set only when valid.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username,omitempty"`
}

// LogoutRequest revokes a session token.
type LogoutRequest struct {
	Token string `json:"token"`
}

// ChangePasswordRequest rotates the admin password. The session token
// travels in the body, matching the dashboard client.
type ChangePasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
