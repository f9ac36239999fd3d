package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/notify"
	"github.com/pkordes/sidequest/internal/repo"
)

// ParticipantService manages trip invitations.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	users        repo.UserRepo
	notifier     notify.Notifier
	log          *slog.Logger
}

// NewParticipantService constructs a ParticipantService. Invitation events
// go to notifier; pass notify.Nop{} to disable them.
func NewParticipantService(
	trips repo.TripRepo,
	participants repo.ParticipantRepo,
	users repo.UserRepo,
	notifier notify.Notifier,
	log *slog.Logger,
) *ParticipantService {
	return &ParticipantService{
		trips:        trips,
		participants: participants,
		users:        users,
		notifier:     notifier,
		log:          log,
	}
}

// Invite adds the user registered under email to the owner's trip.
func (s *ParticipantService) Invite(ctx context.Context, ownerID, tripID uuid.UUID, email string) (domain.Participant, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	trip, err := s.trips.FindForUser(ctx, tripID, ownerID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}
	if trip.OwnerID != ownerID {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w: only the trip owner can invite", domain.ErrForbidden)
	}

	invitee, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w: no user with that email", domain.ErrNotFound)
	}
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}
	if invitee.ID == ownerID {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w: cannot invite yourself", domain.ErrValidation)
	}

	p, err := s.participants.Create(ctx, tripID, invitee.ID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	ev := notify.InviteEvent{
		TripID:      tripID,
		Destination: trip.Destination,
		InviterID:   ownerID,
		InviteeID:   invitee.ID,
		InvitedAt:   time.Now().UTC(),
	}
	if err := s.notifier.Invited(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "invite notification failed",
			"trip_id", tripID, "invitee_id", invitee.ID, "error", err)
	}

	return p, nil
}

// Respond records the invitee's answer. status must be accepted or declined.
func (s *ParticipantService) Respond(ctx context.Context, userID, tripID uuid.UUID, status domain.ParticipantStatus) (domain.Participant, error) {
	if !status.IsResponse() {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Respond: %w: status must be accepted or declined", domain.ErrValidation)
	}

	p, err := s.participants.UpdateStatus(ctx, tripID, userID, status)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Respond: %w: invitation not found", domain.ErrNotFound)
	}
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Respond: %w", err)
	}
	return p, nil
}

// List returns the participants of a trip visible to userID.
func (s *ParticipantService) List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.FindForUser(ctx, tripID, userID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.List: %w", err)
	}
	ps, err := s.participants.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.List: %w", err)
	}
	return ps, nil
}
