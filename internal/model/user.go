package model

import (
	"time"

	"github.com/google/uuid"
)

// Credential is one entry of the fixed staff login list.
// PasswordHash holds a bcrypt digest; the plaintext never leaves the seed loader.
type Credential struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         RoleName `json:"role"`
}

// SessionUser is the authenticated principal of the running process.
type SessionUser struct {
	ID          int64        `json:"id"`
	Username    string       `json:"username"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        RoleName     `json:"role"`
	Permissions []Permission `json:"permissions"`
	RoleLevel   int          `json:"role_level"`
	SessionID   uuid.UUID    `json:"session_id"`
	LoggedInAt  time.Time    `json:"logged_in_at"`
}
