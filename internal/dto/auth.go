package dto

// LoginRequest carries local credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a local user account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginResponse returns the bearer token after a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userID"`
	Name   string `json:"name"`
}

// ExchangeCodeRequest carries the Google authorization code.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
