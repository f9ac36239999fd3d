package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can own trips and be invited to others.
// PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
