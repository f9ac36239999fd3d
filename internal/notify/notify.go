// Package notify publishes trip invitation events to interested clients.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InviteEvent is published when a trip owner invites another user.
type InviteEvent struct {
	TripID      uuid.UUID `json:"tripId"`
	Destination string    `json:"destination"`
	InviterID   uuid.UUID `json:"inviterId"`
	InviteeID   uuid.UUID `json:"inviteeId"`
	InvitedAt   time.Time `json:"invitedAt"`
}

// Notifier delivers invitation events. Delivery is best effort; callers log
// errors and carry on.
type Notifier interface {
	Invited(ctx context.Context, ev InviteEvent) error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Invited(context.Context, InviteEvent) error { return nil }
