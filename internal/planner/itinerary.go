package planner

import (
	"math"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/catalog"
	"github.com/pkordes/sidequest/internal/domain"
)

// Synthetic stops are placed at a fixed midpoint; there is no routing engine
// to place them along the real road.
var midpoint = domain.Coordinates{Lat: 47.5, Lng: -122.0}

// Range thresholds in miles. A stop is added only when the distance is
// strictly greater than the threshold.
const (
	evRangeMiles  = 100.0
	gasRangeMiles = 150.0
)

// Average driving speeds in mph.
const (
	baseSpeedMPH   = 50.0
	scenicSpeedMPH = 40.0
)

// Energy and food prices used for cost estimates.
const (
	evMilesPerKWh       = 3.5
	evDollarsPerKWh     = 0.30
	gasMPG              = 30.0
	gasDollarsPerGallon = 4.00
	mealCost            = 25.0
	quickBiteCost       = 12.0
)

// PlanTrip builds the itinerary from Origin to the destination and wraps it
// in a Trip ready to be persisted for owner. ID and timestamps are left for
// the store to assign.
func PlanTrip(owner uuid.UUID, destination string, to domain.Coordinates, prefs domain.Preferences) domain.Trip {
	it := BuildItinerary(destination, to, prefs)
	return domain.Trip{
		OwnerID:        owner,
		Destination:    destination,
		DestinationLat: to.Lat,
		DestinationLng: to.Lng,
		Itinerary:      it,
		EstimatedCost:  it.EstimatedCost.Total,
		Distance:       it.TotalDistance,
		Duration:       it.TotalDuration,
		Status:         domain.TripStatusPlanned,
	}
}

// BuildItinerary computes distance, stops, duration and cost for a trip from
// Origin to the destination.
func BuildItinerary(destination string, to domain.Coordinates, prefs domain.Preferences) domain.Itinerary {
	distance := HaversineMiles(Origin, to)
	stops := GenerateStops(destination, distance, prefs)

	duration := DrivingMinutes(distance, prefs)
	for _, s := range stops {
		duration += float64(s.Duration)
	}

	waypoints := make([]domain.Coordinates, len(stops))
	for i, s := range stops {
		waypoints[i] = s.Coordinates()
	}

	return domain.Itinerary{
		Route: domain.Route{
			StartLat:  Origin.Lat,
			StartLng:  Origin.Lng,
			EndLat:    to.Lat,
			EndLng:    to.Lng,
			Waypoints: waypoints,
		},
		Stops:         stops,
		TotalDistance: distance,
		TotalDuration: duration,
		EstimatedCost: EstimateCost(distance, prefs, stops),
	}
}

// GenerateStops returns the stops for a trip in insertion order: catalog
// stops for the destination first, then a charging or fuel stop, a meal
// stop and a scenic stop when the preferences call for them.
func GenerateStops(destination string, distance float64, prefs domain.Preferences) []domain.Stop {
	stops := catalog.StopsFor(destination)
	if stops == nil {
		stops = []domain.Stop{}
	}

	if prefs.HasCar {
		switch {
		case prefs.CarType == domain.CarTypeEV && distance > evRangeMiles:
			stops = append(stops, domain.Stop{
				Type:     domain.StopCharging,
				Name:     "Fast Charging Station",
				Address:  "Midpoint of journey",
				Lat:      midpoint.Lat,
				Lng:      midpoint.Lng,
				Duration: 45,
				Notes:    "Plan for brunch/lunch while charging",
			})
		case prefs.CarType == domain.CarTypeGas && distance > gasRangeMiles:
			stops = append(stops, domain.Stop{
				Type:     domain.StopFuel,
				Name:     "Gas Station",
				Address:  "Midpoint of journey",
				Lat:      midpoint.Lat,
				Lng:      midpoint.Lng,
				Duration: 10,
				Notes:    "Quick fuel stop",
			})
		}
	}

	if prefs.FoodPreference == domain.FoodPreferenceAlways && !hasFoodStop(stops) {
		meal := domain.Stop{
			Type:     domain.StopFood,
			Name:     "Local Restaurant",
			Address:  "En route",
			Lat:      midpoint.Lat,
			Lng:      midpoint.Lng,
			Duration: 30,
			Notes:    "Quick bite",
		}
		if prefs.MealType == domain.MealTypeMeal {
			meal.Duration = 60
			meal.Notes = "Sit-down meal"
		}
		stops = append(stops, meal)
	}

	if prefs.ScenicPreference >= highScenic {
		stops = append(stops, domain.Stop{
			Type:     domain.StopScenic,
			Name:     "Scenic Viewpoint",
			Address:  "Along the route",
			Lat:      midpoint.Lat,
			Lng:      midpoint.Lng,
			Duration: 15,
			Notes:    "Photo opportunity",
		})
	}

	return stops
}

func hasFoodStop(stops []domain.Stop) bool {
	for _, s := range stops {
		if s.Type == domain.StopFood {
			return true
		}
	}
	return false
}

// DrivingMinutes estimates pure driving time. Scenic travellers are assumed
// to take slower roads.
func DrivingMinutes(distance float64, prefs domain.Preferences) float64 {
	speed := baseSpeedMPH
	if prefs.ScenicPreference >= highScenic {
		speed = scenicSpeedMPH
	}
	return (distance / speed) * 60
}

// EstimateCost prices fuel or charging for the distance and one meal per
// food stop. Fuel and food are rounded to cents on their own; the total is
// rounded once from the unrounded sum.
func EstimateCost(distance float64, prefs domain.Preferences, stops []domain.Stop) domain.Cost {
	var fuel, food float64

	if prefs.HasCar {
		switch prefs.CarType {
		case domain.CarTypeEV:
			fuel = (distance / evMilesPerKWh) * evDollarsPerKWh
		case domain.CarTypeGas:
			fuel = (distance / gasMPG) * gasDollarsPerGallon
		}
	}

	perStop := quickBiteCost
	if prefs.MealType == domain.MealTypeMeal {
		perStop = mealCost
	}
	for _, s := range stops {
		if s.Type == domain.StopFood {
			food += perStop
		}
	}

	return domain.Cost{
		Fuel:  roundCents(fuel),
		Food:  roundCents(food),
		Total: roundCents(fuel + food),
	}
}

// roundCents rounds half away from zero to two decimals. Costs are never
// negative, so this matches rounding half up.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
