package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sidequest/internal/catalog"
	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/planner"
)

// ---- helpers ---------------------------------------------------------------

// enthusiastPrefs wants everything: day trips, nature, sights, views, food, and drives an EV.
func enthusiastPrefs() domain.Preferences {
	return domain.Preferences{
		TripLength:       domain.TripLengthDay,
		DriverStatus:     domain.DriverStatusDriver,
		HasCar:           true,
		CarType:          domain.CarTypeEV,
		FoodPreference:   domain.FoodPreferenceAlways,
		MealType:         domain.MealTypeMeal,
		EatLocation:      domain.EatLocationStop,
		ScenicPreference: 5,
		NatureLover:      true,
		Sightseeing:      true,
	}
}

// neutralPrefs matches nothing except the "short" distance rule.
func neutralPrefs() domain.Preferences {
	return domain.Preferences{
		TripLength:       domain.TripLengthShort,
		DriverStatus:     domain.DriverStatusPassenger,
		FoodPreference:   domain.FoodPreferenceSometimes,
		MealType:         domain.MealTypeSandwich,
		EatLocation:      domain.EatLocationCar,
		ScenicPreference: 1,
	}
}

func perfectDestination() domain.Destination {
	return domain.Destination{
		Name:                "Perfect Spot",
		DistanceMiles:       20,
		Tags:                []string{"short", "scenic", "nature", "attraction"},
		HasChargingStations: true,
		FoodOptions:         domain.FoodOptionsMany,
	}
}

// ---- MatchScore ------------------------------------------------------------

func TestMatchScore_AllBonuses(t *testing.T) {
	// 30 day+short, 20 nature, 15 attraction, 15 scenic, 10 ev charging, 10 food.
	assert.Equal(t, 100, planner.MatchScore(perfectDestination(), enthusiastPrefs()))
}

func TestMatchScore_EVWithoutCharging(t *testing.T) {
	d := perfectDestination()
	d.HasChargingStations = false

	// 30 + 20 + 15 + 15 - 15 + 10
	assert.Equal(t, 75, planner.MatchScore(d, enthusiastPrefs()))
}

func TestMatchScore_NoCarMeansNoEVAdjustment(t *testing.T) {
	d := perfectDestination()
	d.HasChargingStations = false
	p := enthusiastPrefs()
	p.HasCar = false

	// A car type left over from an earlier save is dropped before scoring.
	// 30 + 20 + 15 + 15 + 10, no EV bonus or penalty.
	assert.Equal(t, 90, planner.MatchScore(d, p.Normalize()))
}

func TestMatchScore_ClampsAtZero(t *testing.T) {
	// Olympic has no "short" tag and no charging: the only contribution is -15.
	olympic, ok := catalog.Lookup("Olympic National Park")
	require.True(t, ok)

	p := neutralPrefs()
	p.TripLength = domain.TripLengthDay
	p.HasCar = true
	p.CarType = domain.CarTypeEV

	assert.Equal(t, 0, planner.MatchScore(olympic, p))
}

func TestMatchScore_TripLengthBranchesAreExclusive(t *testing.T) {
	// Tagged both short and long and far away: a weekend traveller gets the
	// 30-point tag match only, never the 25-point distance bonus on top.
	d := domain.Destination{DistanceMiles: 120, Tags: []string{"short", "long"}}

	cases := []struct {
		length domain.TripLength
		want   int
	}{
		{domain.TripLengthDay, 30},
		{domain.TripLengthWeekend, 30},
		{domain.TripLengthShort, 0},
		{domain.TripLengthLong, 25},
	}
	for _, tc := range cases {
		t.Run(string(tc.length), func(t *testing.T) {
			p := neutralPrefs()
			p.TripLength = tc.length
			assert.Equal(t, tc.want, planner.MatchScore(d, p))
		})
	}
}

func TestMatchScore_DistanceBoundaries(t *testing.T) {
	p := neutralPrefs()

	p.TripLength = domain.TripLengthShort
	assert.Equal(t, 0, planner.MatchScore(domain.Destination{DistanceMiles: 50}, p), "short needs < 50")
	assert.Equal(t, 25, planner.MatchScore(domain.Destination{DistanceMiles: 49.9}, p))

	p.TripLength = domain.TripLengthLong
	assert.Equal(t, 0, planner.MatchScore(domain.Destination{DistanceMiles: 80}, p), "long needs > 80")
	assert.Equal(t, 25, planner.MatchScore(domain.Destination{DistanceMiles: 80.1}, p))
}

func TestMatchScore_FoodNeverLikesQuietPlaces(t *testing.T) {
	p := neutralPrefs()
	p.TripLength = domain.TripLengthWeekend
	p.FoodPreference = domain.FoodPreferenceNever

	assert.Equal(t, 5, planner.MatchScore(domain.Destination{FoodOptions: domain.FoodOptionsLimited}, p))
	assert.Equal(t, 0, planner.MatchScore(domain.Destination{FoodOptions: domain.FoodOptionsMany}, p))
}

func TestMatchScore_ScenicNeedsHighPreference(t *testing.T) {
	d := domain.Destination{Tags: []string{"scenic"}}
	p := neutralPrefs()
	p.TripLength = domain.TripLengthWeekend

	p.ScenicPreference = 3
	assert.Equal(t, 0, planner.MatchScore(d, p))

	p.ScenicPreference = 4
	assert.Equal(t, 15, planner.MatchScore(d, p))
}

func TestMatchScore_AlwaysInRange(t *testing.T) {
	lengths := []domain.TripLength{domain.TripLengthDay, domain.TripLengthShort, domain.TripLengthWeekend, domain.TripLengthLong}
	cars := []domain.CarType{domain.CarTypeNone, domain.CarTypeEV, domain.CarTypeGas, domain.CarTypeHybrid}
	foods := []domain.FoodPreference{domain.FoodPreferenceAlways, domain.FoodPreferenceSometimes, domain.FoodPreferenceNever}

	for _, d := range catalog.Destinations() {
		for _, l := range lengths {
			for _, c := range cars {
				for _, f := range foods {
					for scenic := 1; scenic <= 5; scenic++ {
						p := domain.Preferences{
							TripLength: l, HasCar: c != domain.CarTypeNone, CarType: c,
							FoodPreference: f, ScenicPreference: scenic,
							NatureLover: scenic%2 == 0, Sightseeing: scenic > 2,
						}
						got := planner.MatchScore(d, p)
						require.GreaterOrEqual(t, got, 0)
						require.LessOrEqual(t, got, 100)
					}
				}
			}
		}
	}
}

// ---- Highlights ------------------------------------------------------------

func TestHighlights_AllInFixedOrder(t *testing.T) {
	bainbridge, ok := catalog.Lookup("Bainbridge Island")
	require.True(t, ok)

	got := planner.Highlights(bainbridge, enthusiastPrefs())

	assert.Equal(t, []string{
		"Scenic route",
		"Nature experience",
		"EV charging available",
		"Multiple dining options",
		"Perfect day trip",
	}, got)
}

func TestHighlights_OnlyApplicable(t *testing.T) {
	rainier, ok := catalog.Lookup("Mount Rainier National Park")
	require.True(t, ok)

	// No charging, limited food, 85 miles away.
	got := planner.Highlights(rainier, enthusiastPrefs())

	assert.Equal(t, []string{"Scenic route", "Nature experience"}, got)
}

func TestHighlights_NeverNil(t *testing.T) {
	got := planner.Highlights(domain.Destination{FoodOptions: domain.FoodOptionsLimited}, neutralPrefs())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Recommend -------------------------------------------------------------

func TestRecommend_OnePerDestinationSortedDescending(t *testing.T) {
	recs := planner.Recommend(enthusiastPrefs(), catalog.Destinations())

	require.Len(t, recs, 8)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
	assert.Equal(t, "Snoqualmie Falls", recs[0].Destination)
	assert.Equal(t, 90, recs[0].MatchScore)
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	recs := planner.Recommend(neutralPrefs(), catalog.Destinations())

	var names []string
	for _, r := range recs {
		names = append(names, r.Destination)
	}
	// Three destinations under 50 miles score 25; the rest score 0.
	assert.Equal(t, []string{
		"Bainbridge Island",
		"Snoqualmie Falls",
		"Woodinville Wine Country",
		"Mount Rainier National Park",
		"Leavenworth",
		"Deception Pass",
		"Olympic National Park",
		"La Conner",
	}, names)
}

func TestRecommend_CopiesCatalogFields(t *testing.T) {
	recs := planner.Recommend(neutralPrefs(), catalog.Destinations())

	first := recs[0]
	assert.Equal(t, "Bainbridge Island", first.Destination)
	assert.Equal(t, 25.0, first.Distance)
	assert.Equal(t, 120, first.EstimatedDuration)
	assert.Equal(t, 47.6262, first.Lat)
	assert.Equal(t, -122.5212, first.Lng)
	assert.NotEmpty(t, first.Description)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	recs := planner.Recommend(neutralPrefs(), nil)

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}
