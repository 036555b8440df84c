package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is issued by the identity collaborator; this service only validates
// tokens against it.
type Session struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}

// SessionInfo is a valid session joined with the caller's role and contact
// email.
type SessionInfo struct {
	Session
	Role  UserRole `db:"role"`
	Email string   `db:"email"`
}
