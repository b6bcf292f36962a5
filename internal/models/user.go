package models

// User represents a row in the users table.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuthProvider string `json:"authProvider"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
