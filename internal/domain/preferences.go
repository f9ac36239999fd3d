package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripLength is the trip-length category picked during onboarding.
type TripLength string

const (
	TripLengthDay     TripLength = "day"
	TripLengthShort   TripLength = "short"
	TripLengthWeekend TripLength = "weekend"
	TripLengthLong    TripLength = "long"
)

// DriverStatus describes who does the driving.
type DriverStatus string

const (
	DriverStatusDriver    DriverStatus = "driver"
	DriverStatusPassenger DriverStatus = "passenger"
	DriverStatusBoth      DriverStatus = "both"
)

// CarType is the energy type of the user's car. The empty value means
// no car type was given.
type CarType string

const (
	CarTypeNone   CarType = ""
	CarTypeEV     CarType = "ev"
	CarTypeGas    CarType = "gas"
	CarTypeHybrid CarType = "hybrid"
)

// FoodPreference is the user's attitude towards food stops.
type FoodPreference string

const (
	FoodPreferenceAlways    FoodPreference = "pitstop_always"
	FoodPreferenceSometimes FoodPreference = "pitstop_sometimes"
	FoodPreferenceNever     FoodPreference = "pitstop_never"
)

// MealType is the preferred meal style on the road.
type MealType string

const (
	MealTypeSandwich MealType = "sandwich"
	MealTypeMeal     MealType = "meal"
	MealTypeFlexible MealType = "flexible"
)

// EatLocation is where the user prefers to eat.
type EatLocation string

const (
	EatLocationStop     EatLocation = "stop"
	EatLocationCar      EatLocation = "car"
	EatLocationFlexible EatLocation = "flexible"
)

// Scenic preference bounds, inclusive.
const (
	MinScenicPreference = 1
	MaxScenicPreference = 5
)

// Preferences is the onboarding survey result for one user.
// There is at most one row per user; saving again replaces it.
type Preferences struct {
	UserID           uuid.UUID
	TripLength       TripLength
	DriverStatus     DriverStatus
	HasCar           bool
	CarType          CarType // only meaningful when HasCar is true
	FoodPreference   FoodPreference
	MealType         MealType
	EatLocation      EatLocation
	ScenicPreference int
	NatureLover      bool
	Sightseeing      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks every enum field and the scenic preference range.
// It returns an error wrapping ErrValidation that names the first bad field.
func (p Preferences) Validate() error {
	switch p.TripLength {
	case TripLengthDay, TripLengthShort, TripLengthWeekend, TripLengthLong:
	default:
		return fmt.Errorf("%w: invalid tripLength %q", ErrValidation, p.TripLength)
	}
	switch p.DriverStatus {
	case DriverStatusDriver, DriverStatusPassenger, DriverStatusBoth:
	default:
		return fmt.Errorf("%w: invalid driverStatus %q", ErrValidation, p.DriverStatus)
	}
	switch p.CarType {
	case CarTypeNone, CarTypeEV, CarTypeGas, CarTypeHybrid:
	default:
		return fmt.Errorf("%w: invalid carType %q", ErrValidation, p.CarType)
	}
	switch p.FoodPreference {
	case FoodPreferenceAlways, FoodPreferenceSometimes, FoodPreferenceNever:
	default:
		return fmt.Errorf("%w: invalid foodPreference %q", ErrValidation, p.FoodPreference)
	}
	switch p.MealType {
	case MealTypeSandwich, MealTypeMeal, MealTypeFlexible:
	default:
		return fmt.Errorf("%w: invalid mealType %q", ErrValidation, p.MealType)
	}
	switch p.EatLocation {
	case EatLocationStop, EatLocationCar, EatLocationFlexible:
	default:
		return fmt.Errorf("%w: invalid eatLocation %q", ErrValidation, p.EatLocation)
	}
	if p.ScenicPreference < MinScenicPreference || p.ScenicPreference > MaxScenicPreference {
		return fmt.Errorf("%w: scenicPreference must be between %d and %d",
			ErrValidation, MinScenicPreference, MaxScenicPreference)
	}
	return nil
}

// Normalize clears CarType when the user has no car, so a stale car type
// never influences scoring or cost estimates.
func (p Preferences) Normalize() Preferences {
	if !p.HasCar {
		p.CarType = CarTypeNone
	}
	return p
}
