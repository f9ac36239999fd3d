package catalog

import (
	"slices"

	"github.com/pkordes/sidequest/internal/domain"
)

// stopsByDestination lists the known stops per destination, in visiting order.
var stopsByDestination = map[string][]domain.Stop{
	"Bainbridge Island": {
		{
			Type:     domain.StopFood,
			Name:     "Blackbird Bakery",
			Address:  "210 Winslow Way E, Bainbridge Island, WA",
			Lat:      47.6262,
			Lng:      -122.5151,
			Duration: 30,
			Notes:    "Popular bakery and cafe",
		},
		{
			Type:     domain.StopCharging,
			Name:     "ChargePoint Station",
			Address:  "Town Square, Bainbridge Island",
			Lat:      47.6264,
			Lng:      -122.5213,
			Duration: 45,
			Notes:    "Level 2 charging while you explore",
		},
	},
	"Snoqualmie Falls": {
		{
			Type:     domain.StopAttraction,
			Name:     "Snoqualmie Falls Viewpoint",
			Address:  "6501 Railroad Ave SE, Snoqualmie, WA",
			Lat:      47.5420,
			Lng:      -121.8374,
			Duration: 30,
			Notes:    "Main viewpoint and trails",
		},
		{
			Type:     domain.StopFood,
			Name:     "Snoqualmie Falls Cafe",
			Address:  "Near falls parking area",
			Lat:      47.5422,
			Lng:      -121.8375,
			Duration: 45,
			Notes:    "Casual dining with views",
		},
	},
	"Mount Rainier National Park": {
		{
			Type:     domain.StopFuel,
			Name:     "Ashford Gas Station",
			Address:  "Ashford, WA (Last fuel before park)",
			Lat:      46.7519,
			Lng:      -121.8101,
			Duration: 10,
			Notes:    "Last fuel stop before entering park",
		},
		{
			Type:     domain.StopFood,
			Name:     "Paradise Inn",
			Address:  "Paradise, Mount Rainier",
			Lat:      46.7866,
			Lng:      -121.7356,
			Duration: 60,
			Notes:    "Historic lodge with dining",
		},
		{
			Type:     domain.StopAttraction,
			Name:     "Paradise Visitor Center",
			Address:  "Paradise, Mount Rainier",
			Lat:      46.7866,
			Lng:      -121.7356,
			Duration: 45,
			Notes:    "Visitor center and trailheads",
		},
	},
}

// StopsFor returns a copy of the predefined stops for a destination.
// The name must match exactly; unknown destinations return nil.
func StopsFor(destination string) []domain.Stop {
	return slices.Clone(stopsByDestination[destination])
}
