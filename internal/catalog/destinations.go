// Package catalog holds the fixed destination and stop tables used by the
// planner. The tables are built once at package initialization and never
// mutated; accessors hand out copies.
package catalog

import (
	"slices"

	"github.com/pkordes/sidequest/internal/domain"
)

// destinations is ordered; ties in the recommendation ranking keep this order.
var destinations = []domain.Destination{
	{
		Name:                "Bainbridge Island",
		Description:         "Scenic ferry ride and charming island town with shops, cafes, and waterfront views",
		DistanceMiles:       25,
		EstimatedDuration:   120, // includes the ferry
		Location:            domain.Coordinates{Lat: 47.6262, Lng: -122.5212},
		Tags:                []string{"scenic", "nature", "ferry", "short"},
		HasChargingStations: true,
		FoodOptions:         domain.FoodOptionsMany,
	},
	{
		Name:                "Snoqualmie Falls",
		Description:         "Stunning 268-foot waterfall with hiking trails and observation deck",
		DistanceMiles:       30,
		EstimatedDuration:   90,
		Location:            domain.Coordinates{Lat: 47.5420, Lng: -121.8374},
		Tags:                []string{"nature", "scenic", "short", "attraction"},
		HasChargingStations: true,
		FoodOptions:         domain.FoodOptionsLimited,
	},
	{
		Name:                "Mount Rainier National Park",
		Description:         "Iconic mountain views, hiking trails, and pristine wilderness",
		DistanceMiles:       85,
		EstimatedDuration:   180,
		Location:            domain.Coordinates{Lat: 46.8523, Lng: -121.7603},
		Tags:                []string{"nature", "scenic", "long", "hiking"},
		HasChargingStations: false,
		FoodOptions:         domain.FoodOptionsLimited,
	},
	{
		Name:                "Leavenworth",
		Description:         "Bavarian-themed village with shops, restaurants, and mountain scenery",
		DistanceMiles:       120,
		EstimatedDuration:   150,
		Location:            domain.Coordinates{Lat: 47.5962, Lng: -120.6615},
		Tags:                []string{"scenic", "long", "weekend", "food"},
		HasChargingStations: true,
		FoodOptions:         domain.FoodOptionsMany,
	},
	{
		Name:                "Deception Pass",
		Description:         "Dramatic bridge over churning waters, beaches, and hiking trails",
		DistanceMiles:       80,
		EstimatedDuration:   120,
		Location:            domain.Coordinates{Lat: 48.4043, Lng: -122.6468},
		Tags:                []string{"nature", "scenic", "long", "bridge"},
		HasChargingStations: true,
		FoodOptions:         domain.FoodOptionsLimited,
	},
	{
		Name:                "Woodinville Wine Country",
		Description:         "Over 100 wineries and tasting rooms in a scenic valley",
		DistanceMiles:       20,
		EstimatedDuration:   60,
		Location:            domain.Coordinates{Lat: 47.7543, Lng: -122.1632},
		Tags:                []string{"short", "food", "relaxing"},
		HasChargingStations: true,
		FoodOptions:         domain.FoodOptionsMany,
	},
	{
		Name:                "Olympic National Park",
		Description:         "Diverse ecosystems from rainforests to beaches to mountains",
		DistanceMiles:       110,
		EstimatedDuration:   180,
		Location:            domain.Coordinates{Lat: 47.8021, Lng: -123.6044},
		Tags:                []string{"nature", "scenic", "weekend", "hiking"},
		HasChargingStations: false,
		FoodOptions:         domain.FoodOptionsLimited,
	},
	{
		Name:                "La Conner",
		Description:         "Historic waterfront town with art galleries, tulip fields (seasonal), and charm",
		DistanceMiles:       70,
		EstimatedDuration:   100,
		Location:            domain.Coordinates{Lat: 48.3912, Lng: -122.4968},
		Tags:                []string{"scenic", "short", "relaxing"},
		HasChargingStations: true,
		FoodOptions:         domain.FoodOptionsMany,
	},
}

// Destinations returns the destination catalog in its fixed order.
// The result is a deep copy; callers may modify it freely.
func Destinations() []domain.Destination {
	out := make([]domain.Destination, len(destinations))
	for i, d := range destinations {
		d.Tags = slices.Clone(d.Tags)
		out[i] = d
	}
	return out
}

// Lookup returns the catalog destination with the given exact name.
func Lookup(name string) (domain.Destination, bool) {
	for _, d := range destinations {
		if d.Name == name {
			d.Tags = slices.Clone(d.Tags)
			return d, true
		}
	}
	return domain.Destination{}, false
}
