package entity

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
)

// AdminUser is the server-side credential record for the dashboard.
// Passwords and recovery answers are stored as bcrypt hashes only.
type AdminUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecoveryAnswer is one of the fixed recovery questions, answer hashed.
type RecoveryAnswer struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Question   string    `json:"question"`
	AnswerHash string    `json:"-"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// PasswordHistoryEntry records a previous password hash. Only the most
// recent entries are kept and recent hashes cannot be reused.
type PasswordHistoryEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
