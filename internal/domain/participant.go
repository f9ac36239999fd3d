package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantStatus is the invitation state of a trip participant.
type ParticipantStatus string

const (
	ParticipantInvited  ParticipantStatus = "invited"
	ParticipantAccepted ParticipantStatus = "accepted"
	ParticipantDeclined ParticipantStatus = "declined"
)

// IsResponse reports whether s is a status an invitee may answer with.
func (s ParticipantStatus) IsResponse() bool {
	return s == ParticipantAccepted || s == ParticipantDeclined
}

// Participant links a non-owner user to a trip. There is at most one
// participant row per (trip, user) pair.
type Participant struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	UserID    uuid.UUID
	Status    ParticipantStatus
	Email     string // joined from users on read paths
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
