package domain

// User represents an application user.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuthProvider string `json:"authProvider"` // "local" or "google"
	IsActive     bool   `json:"isActive"`
	AuditFields
}
