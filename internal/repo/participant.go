package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/sidequest/internal/domain"
)

// ParticipantRepo stores trip invitations. There is at most one row per
// (trip, user) pair; the database enforces it.
type ParticipantRepo interface {
	// Create adds userID to the trip with status invited.
	// Returns domain.ErrConflict if the user is already on the trip.
	Create(ctx context.Context, tripID, userID uuid.UUID) (domain.Participant, error)

	// UpdateStatus records the user's answer to an invitation.
	// Returns domain.ErrNotFound if the user was never invited.
	UpdateStatus(ctx context.Context, tripID, userID uuid.UUID, status domain.ParticipantStatus) (domain.Participant, error)

	// ListByTrip returns the participants of a trip in invitation order,
	// with email and name joined from users.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `p.id, p.trip_id, p.user_id, p.status, u.email, u.name, p.created_at, p.updated_at`

func (r *pgParticipantRepo) Create(ctx context.Context, tripID, userID uuid.UUID) (domain.Participant, error) {
	const q = `
		WITH p AS (
			INSERT INTO trip_participants (trip_id, user_id, status)
			VALUES (@trip_id, @user_id, 'invited')
			RETURNING *
		)
		SELECT ` + participantColumns + `
		FROM p JOIN users u ON u.id = p.user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": userID})
	result, err := scanParticipant(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w: user already invited", domain.ErrConflict)
		}
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) UpdateStatus(ctx context.Context, tripID, userID uuid.UUID, status domain.ParticipantStatus) (domain.Participant, error) {
	const q = `
		WITH p AS (
			UPDATE trip_participants
			SET status = @status, updated_at = now()
			WHERE trip_id = @trip_id AND user_id = @user_id
			RETURNING *
		)
		SELECT ` + participantColumns + `
		FROM p JOIN users u ON u.id = p.user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"trip_id": tripID,
		"user_id": userID,
		"status":  string(status),
	})
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.UpdateStatus: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT ` + participantColumns + `
		FROM trip_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.trip_id = @trip_id
		ORDER BY p.created_at, p.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	participants := []domain.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.ListByTrip: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTrip: rows: %w", err)
	}
	return participants, nil
}

func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p              domain.Participant
		id, trip, user pgtype.UUID
		status         string
	)
	err := s.Scan(&id, &trip, &user, &status, &p.Email, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.ErrNotFound
		}
		return domain.Participant{}, err
	}
	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(trip.Bytes)
	p.UserID = uuid.UUID(user.Bytes)
	p.Status = domain.ParticipantStatus(status)
	return p, nil
}
