package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sidequest/internal/catalog"
	"github.com/pkordes/sidequest/internal/domain"
)

func TestDestinations_FixedOrder(t *testing.T) {
	got := catalog.Destinations()

	require.Len(t, got, 8)
	assert.Equal(t, "Bainbridge Island", got[0].Name)
	assert.Equal(t, "La Conner", got[7].Name)
}

func TestDestinations_ReturnsCopy(t *testing.T) {
	first := catalog.Destinations()
	first[0].Name = "Mutated"
	first[0].Tags[0] = "mutated"

	second := catalog.Destinations()

	assert.Equal(t, "Bainbridge Island", second[0].Name)
	assert.Equal(t, "scenic", second[0].Tags[0], "tag slices must not be shared")
}

func TestLookup(t *testing.T) {
	d, ok := catalog.Lookup("Leavenworth")
	require.True(t, ok)
	assert.Equal(t, domain.FoodOptionsMany, d.FoodOptions)

	_, ok = catalog.Lookup("leavenworth")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestStopsFor_KnownDestination(t *testing.T) {
	stops := catalog.StopsFor("Mount Rainier National Park")

	require.Len(t, stops, 3)
	assert.Equal(t, domain.StopFuel, stops[0].Type)
	assert.Equal(t, "Paradise Inn", stops[1].Name)
	assert.Equal(t, domain.StopAttraction, stops[2].Type)
}

func TestStopsFor_UnknownDestination(t *testing.T) {
	assert.Empty(t, catalog.StopsFor("Spokane"))
	assert.Empty(t, catalog.StopsFor("bainbridge island"))
}

func TestStopsFor_ReturnsCopy(t *testing.T) {
	stops := catalog.StopsFor("Bainbridge Island")
	stops[0].Name = "Mutated"

	assert.Equal(t, "Blackbird Bakery", catalog.StopsFor("Bainbridge Island")[0].Name)
}
