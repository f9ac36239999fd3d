// Package planner turns onboarding preferences into ranked destination
// recommendations and generated itineraries.
//
// Everything here is a pure function over its arguments and the static
// catalog, so it is safe to call from any number of request goroutines.
package planner

import (
	"slices"

	"github.com/pkordes/sidequest/internal/domain"
)

// Destination tags the scorer looks at.
const (
	tagShort      = "short"
	tagLong       = "long"
	tagNature     = "nature"
	tagAttraction = "attraction"
	tagScenic     = "scenic"
)

// Highlight strings, emitted in this order.
const (
	HighlightScenic     = "Scenic route"
	HighlightNature     = "Nature experience"
	HighlightEVCharging = "EV charging available"
	HighlightDining     = "Multiple dining options"
	HighlightDayTrip    = "Perfect day trip"
)

// highScenic is the scenic preference from which scenic routes are favored.
const highScenic = 4

// Recommend scores every catalog destination and returns them ordered by
// match score, highest first. Destinations with equal scores keep their
// catalog order.
func Recommend(prefs domain.Preferences, destinations []domain.Destination) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(destinations))
	for _, d := range destinations {
		recs = append(recs, domain.Recommendation{
			Destination:       d.Name,
			Description:       d.Description,
			Distance:          d.DistanceMiles,
			EstimatedDuration: d.EstimatedDuration,
			MatchScore:        MatchScore(d, prefs),
			Highlights:        Highlights(d, prefs),
			Lat:               d.Location.Lat,
			Lng:               d.Location.Lng,
		})
	}
	slices.SortStableFunc(recs, func(a, b domain.Recommendation) int {
		return b.MatchScore - a.MatchScore
	})
	return recs
}

// MatchScore rates how well a destination fits the preferences, from 0 to 100.
// The EV penalty is applied before clamping, so the raw sum may go negative.
func MatchScore(d domain.Destination, p domain.Preferences) int {
	score := tripLengthPoints(d, p.TripLength)

	if p.NatureLover && d.HasTag(tagNature) {
		score += 20
	}
	if p.Sightseeing && d.HasTag(tagAttraction) {
		score += 15
	}
	if p.ScenicPreference >= highScenic && d.HasTag(tagScenic) {
		score += 15
	}

	if p.CarType == domain.CarTypeEV {
		if d.HasChargingStations {
			score += 10
		} else {
			score -= 15
		}
	}

	switch {
	case p.FoodPreference == domain.FoodPreferenceAlways && d.FoodOptions == domain.FoodOptionsMany:
		score += 10
	case p.FoodPreference == domain.FoodPreferenceNever && d.FoodOptions == domain.FoodOptionsLimited:
		score += 5
	}

	return min(100, max(0, score))
}

// tripLengthPoints awards at most one trip-length bonus.
func tripLengthPoints(d domain.Destination, length domain.TripLength) int {
	switch {
	case length == domain.TripLengthDay && d.HasTag(tagShort):
		return 30
	case length == domain.TripLengthWeekend && d.HasTag(tagLong):
		return 30
	case length == domain.TripLengthShort && d.DistanceMiles < 50:
		return 25
	case length == domain.TripLengthLong && d.DistanceMiles > 80:
		return 25
	}
	return 0
}

// Highlights lists the selling points of a destination for these preferences.
// It never returns nil so the JSON encoding is always an array.
func Highlights(d domain.Destination, p domain.Preferences) []string {
	out := []string{}
	if d.HasTag(tagScenic) {
		out = append(out, HighlightScenic)
	}
	if d.HasTag(tagNature) {
		out = append(out, HighlightNature)
	}
	if p.CarType == domain.CarTypeEV && d.HasChargingStations {
		out = append(out, HighlightEVCharging)
	}
	if d.FoodOptions == domain.FoodOptionsMany {
		out = append(out, HighlightDining)
	}
	if p.TripLength == domain.TripLengthDay && d.DistanceMiles < 50 {
		out = append(out, HighlightDayTrip)
	}
	return out
}
