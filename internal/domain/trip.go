// Package domain contains the core data types for the Side Quest application.
// This package depends only on uuid and the standard library and is imported
// by every other internal package (planner, repo, service, handler).
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	TripStatusPlanned   TripStatus = "planned"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

// Valid reports whether s is a known lifecycle state.
func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusPlanned, TripStatusOngoing, TripStatusCompleted:
		return true
	}
	return false
}

// Trip is a generated itinerary saved for its owner.
// EstimatedCost, Distance and Duration duplicate itinerary totals so trips
// can be listed without decoding the itinerary document.
type Trip struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Destination    string
	DestinationLat float64
	DestinationLng float64
	Itinerary      Itinerary
	EstimatedCost  float64
	Distance       float64 // miles
	Duration       float64 // minutes
	Status         TripStatus
	ScheduledDate  *time.Time // nil until the owner picks a date
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Participants is only populated by read paths that ask for it.
	Participants []Participant
}

// TripUpdate carries the owner-editable fields of a trip.
// Nil fields are left unchanged.
type TripUpdate struct {
	Status        *TripStatus
	ScheduledDate *time.Time
}

// Validate rejects unknown statuses.
func (u TripUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, *u.Status)
	}
	return nil
}

// Apply returns a copy of t with the non-nil fields of u applied.
func (u TripUpdate) Apply(t Trip) Trip {
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.ScheduledDate != nil {
		d := *u.ScheduledDate
		t.ScheduledDate = &d
	}
	return t
}
