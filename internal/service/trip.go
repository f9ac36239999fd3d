// Package service contains the business logic for the Side Quest API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/planner"
	"github.com/pkordes/sidequest/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	prefs        repo.PreferenceRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, prefs repo.PreferenceRepo) *TripService {
	return &TripService{trips: trips, participants: participants, prefs: prefs}
}

// Generate plans a trip from the user's stored preferences and persists it.
// The destination is free text; it only has to be non-empty. Catalog names
// additionally pick up the predefined stops.
func (s *TripService) Generate(ctx context.Context, userID uuid.UUID, destination string, lat, lng float64) (domain.Trip, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Generate: %w: destination is required", domain.ErrValidation)
	}
	if lat < -90 || lat > 90 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Generate: %w: destinationLat must be between -90 and 90", domain.ErrValidation)
	}
	if lng < -180 || lng > 180 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Generate: %w: destinationLng must be between -180 and 180", domain.ErrValidation)
	}

	prefs, err := loadPreferences(ctx, s.prefs, userID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Generate: %w", err)
	}

	trip := planner.PlanTrip(userID, destination, domain.Coordinates{Lat: lat, Lng: lng}, prefs)

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Generate: %w", err)
	}
	created.Participants = []domain.Participant{}
	return created, nil
}

// Get returns a trip the user owns or participates in, with its participants.
func (s *TripService) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.FindForUser(ctx, tripID, userID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}

	participants, err := s.participants.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	trip.Participants = participants
	return trip, nil
}

// List returns one page of the trips the user owns or participates in,
// newest first, and the total count.
func (s *TripService) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListForUser(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, total, nil
}

// Update changes the status or scheduled date of a trip. Only the owner may
// do this; participants get domain.ErrForbidden and everyone else
// domain.ErrNotFound.
func (s *TripService) Update(ctx context.Context, userID, tripID uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
	if err := upd.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	trip, err := s.trips.FindForUser(ctx, tripID, userID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if trip.OwnerID != userID {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w: only the trip owner can update it", domain.ErrForbidden)
	}

	updated, err := s.trips.Update(ctx, upd.Apply(trip))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// loadPreferences fetches the user's preferences, mapping a missing row to
// domain.ErrPreferencesRequired.
func loadPreferences(ctx context.Context, prefs repo.PreferenceRepo, userID uuid.UUID) (domain.Preferences, error) {
	p, err := prefs.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Preferences{}, domain.ErrPreferencesRequired
	}
	if err != nil {
		return domain.Preferences{}, err
	}
	return p.Normalize(), nil
}
