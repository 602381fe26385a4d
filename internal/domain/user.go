package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
// PasswordHash is a bcrypt hash — the plaintext password never leaves the
// registration/login request path.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
