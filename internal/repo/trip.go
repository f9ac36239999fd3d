package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/sidequest/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with DB-generated
	// id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// FindForUser returns the trip only when userID is its owner or has a
	// participant row on it. Otherwise it returns domain.ErrNotFound, so
	// callers cannot tell a foreign trip from a missing one.
	FindForUser(ctx context.Context, tripID, userID uuid.UUID) (domain.Trip, error)

	// ListForUser returns one page of the trips userID owns or participates in,
	// newest first, and the total number of such trips.
	ListForUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites status and scheduled_date of a trip owned by trip.OwnerID.
	// Returns domain.ErrNotFound if no such trip exists for that owner.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `t.id, t.owner_id, t.destination, t.destination_lat, t.destination_lng,
	t.itinerary, t.estimated_cost, t.distance, t.duration, t.status, t.scheduled_date,
	t.created_at, t.updated_at`

// visibleTo restricts trips aliased as t to those @user_id owns or was invited to.
const visibleTo = `(t.owner_id = @user_id OR EXISTS (
		SELECT 1 FROM trip_participants p WHERE p.trip_id = t.id AND p.user_id = @user_id))`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips AS t (owner_id, destination, destination_lat, destination_lng,
			itinerary, estimated_cost, distance, duration, status, scheduled_date)
		VALUES (@owner_id, @destination, @destination_lat, @destination_lng,
			@itinerary, @estimated_cost, @distance, @duration, @status, @scheduled_date)
		RETURNING ` + tripColumns

	itinerary, err := json.Marshal(trip.Itinerary)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: encode itinerary: %w", err)
	}

	args := pgx.NamedArgs{
		"owner_id":        trip.OwnerID,
		"destination":     trip.Destination,
		"destination_lat": trip.DestinationLat,
		"destination_lng": trip.DestinationLng,
		"itinerary":       itinerary,
		"estimated_cost":  trip.EstimatedCost,
		"distance":        trip.Distance,
		"duration":        trip.Duration,
		"status":          string(trip.Status),
		"scheduled_date":  trip.ScheduledDate, // nil becomes NULL
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) FindForUser(ctx context.Context, tripID, userID uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips t
		WHERE t.id = @id AND ` + visibleTo

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.FindForUser: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) ListForUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `SELECT count(*) FROM trips t WHERE ` + visibleTo

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListForUser: count: %w", err)
	}

	const q = `
		SELECT ` + tripColumns + `
		FROM trips t
		WHERE ` + visibleTo + `
		ORDER BY t.created_at DESC, t.id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListForUser: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListForUser: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListForUser: rows: %w", err)
	}

	return trips, total, nil
}

// Update overwrites the owner-editable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips AS t
		SET status         = @status,
		    scheduled_date = @scheduled_date,
		    updated_at     = now()
		WHERE t.id = @id AND t.owner_id = @owner_id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":             trip.ID,
		"owner_id":       trip.OwnerID,
		"status":         string(trip.Status),
		"scheduled_date": trip.ScheduledDate,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, nullable scheduled_date and JSONB itinerary conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		ownerID   pgtype.UUID
		itinerary []byte
		status    string
		scheduled pgtype.Date
	)

	err := s.Scan(&id, &ownerID, &t.Destination, &t.DestinationLat, &t.DestinationLng,
		&itinerary, &t.EstimatedCost, &t.Distance, &t.Duration, &status, &scheduled,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	if err := json.Unmarshal(itinerary, &t.Itinerary); err != nil {
		return domain.Trip{}, fmt.Errorf("decode itinerary: %w", err)
	}
	t.ID = uuid.UUID(id.Bytes)
	t.OwnerID = uuid.UUID(ownerID.Bytes)
	t.Status = domain.TripStatus(status)
	if scheduled.Valid {
		sd := scheduled.Time
		t.ScheduledDate = &sd
	}

	return t, nil
}
