package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/planner"
)

func TestHaversineMiles_SamePoint(t *testing.T) {
	assert.Zero(t, planner.HaversineMiles(planner.Origin, planner.Origin))
}

func TestHaversineMiles_SeattleToBainbridgeBakery(t *testing.T) {
	bakery := domain.Coordinates{Lat: 47.6262, Lng: -122.5151}

	got := planner.HaversineMiles(planner.Origin, bakery)

	// Straight line across Elliott Bay, roughly 8.6 miles.
	assert.InDelta(t, 8.635, got, 0.01)
}

func TestHaversineMiles_Symmetric(t *testing.T) {
	leavenworth := domain.Coordinates{Lat: 47.5962, Lng: -120.6615}

	there := planner.HaversineMiles(planner.Origin, leavenworth)
	back := planner.HaversineMiles(leavenworth, planner.Origin)

	assert.InDelta(t, there, back, 1e-9)
	assert.InDelta(t, 77.84, there, 0.01)
}
