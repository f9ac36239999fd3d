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

// PreferenceRepo stores the onboarding preferences, one row per user.
type PreferenceRepo interface {
	// Get returns domain.ErrNotFound when the user has not completed onboarding.
	Get(ctx context.Context, userID uuid.UUID) (domain.Preferences, error)

	// Upsert inserts or replaces the user's preferences in a single statement.
	// Concurrent saves for the same user resolve as last write wins.
	Upsert(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error)
}

type pgPreferenceRepo struct {
	db db
}

// NewPreferenceRepo constructs a PreferenceRepo backed by the provided db connection.
func NewPreferenceRepo(db db) PreferenceRepo {
	return &pgPreferenceRepo{db: db}
}

const preferenceColumns = `user_id, trip_length, driver_status, has_car, car_type,
	food_preference, meal_type, eat_location, scenic_preference,
	nature_lover, sightseeing, created_at, updated_at`

func (r *pgPreferenceRepo) Get(ctx context.Context, userID uuid.UUID) (domain.Preferences, error) {
	const q = `SELECT ` + preferenceColumns + ` FROM user_preferences WHERE user_id = @user_id`

	result, err := scanPreferences(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("repo.PreferenceRepo.Get: %w", err)
	}
	return result, nil
}

// Upsert relies on ON CONFLICT so there is no read-then-write window.
// created_at is preserved on update.
func (r *pgPreferenceRepo) Upsert(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	const q = `
		INSERT INTO user_preferences (
			user_id, trip_length, driver_status, has_car, car_type,
			food_preference, meal_type, eat_location, scenic_preference,
			nature_lover, sightseeing
		) VALUES (
			@user_id, @trip_length, @driver_status, @has_car, @car_type,
			@food_preference, @meal_type, @eat_location, @scenic_preference,
			@nature_lover, @sightseeing
		)
		ON CONFLICT (user_id) DO UPDATE SET
			trip_length       = EXCLUDED.trip_length,
			driver_status     = EXCLUDED.driver_status,
			has_car           = EXCLUDED.has_car,
			car_type          = EXCLUDED.car_type,
			food_preference   = EXCLUDED.food_preference,
			meal_type         = EXCLUDED.meal_type,
			eat_location      = EXCLUDED.eat_location,
			scenic_preference = EXCLUDED.scenic_preference,
			nature_lover      = EXCLUDED.nature_lover,
			sightseeing       = EXCLUDED.sightseeing,
			updated_at        = now()
		RETURNING ` + preferenceColumns

	args := pgx.NamedArgs{
		"user_id":           p.UserID,
		"trip_length":       string(p.TripLength),
		"driver_status":     string(p.DriverStatus),
		"has_car":           p.HasCar,
		"car_type":          string(p.CarType),
		"food_preference":   string(p.FoodPreference),
		"meal_type":         string(p.MealType),
		"eat_location":      string(p.EatLocation),
		"scenic_preference": p.ScenicPreference,
		"nature_lover":      p.NatureLover,
		"sightseeing":       p.Sightseeing,
	}

	result, err := scanPreferences(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("repo.PreferenceRepo.Upsert: %w", err)
	}
	return result, nil
}

func scanPreferences(s scanner) (domain.Preferences, error) {
	var (
		p      domain.Preferences
		userID pgtype.UUID
		scenic int16
	)
	err := s.Scan(
		&userID, &p.TripLength, &p.DriverStatus, &p.HasCar, &p.CarType,
		&p.FoodPreference, &p.MealType, &p.EatLocation, &scenic,
		&p.NatureLover, &p.Sightseeing, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Preferences{}, domain.ErrNotFound
		}
		return domain.Preferences{}, err
	}
	p.UserID = uuid.UUID(userID.Bytes)
	p.ScenicPreference = int(scenic)
	return p, nil
}
