package planner

import (
	"math"

	"github.com/pkordes/sidequest/internal/domain"
)

// EarthRadiusMiles is the mean radius of Earth used for trip distances.
const EarthRadiusMiles = 3959.0

// Origin is the fixed starting point of every trip (downtown Seattle).
var Origin = domain.Coordinates{Lat: 47.6062, Lng: -122.3321}

// HaversineMiles returns the great-circle distance between two points in miles.
// This is a straight-line estimate; there is no road network behind it.
func HaversineMiles(a, b domain.Coordinates) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLng*sinLng

	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
