package domain

// Route is the origin, the destination, and the waypoints in stop order.
type Route struct {
	StartLat  float64       `json:"startLat"`
	StartLng  float64       `json:"startLng"`
	EndLat    float64       `json:"endLat"`
	EndLng    float64       `json:"endLng"`
	Waypoints []Coordinates `json:"waypoints"`
}

// Cost is the estimated spend for a trip, in dollars.
// Fuel and Food are rounded to cents independently; Total is rounded from
// the unrounded sum, so it can differ from Fuel+Food by one cent.
type Cost struct {
	Fuel  float64 `json:"fuel"`
	Food  float64 `json:"food"`
	Total float64 `json:"total"`
}

// Itinerary is the full derived plan for a trip. It is persisted as an
// opaque JSON document on the trip row.
type Itinerary struct {
	Route         Route   `json:"route"`
	Stops         []Stop  `json:"stops"`
	TotalDistance float64 `json:"totalDistance"` // miles
	TotalDuration float64 `json:"totalDuration"` // minutes, driving plus stops
	EstimatedCost Cost    `json:"estimatedCost"`
}

// FoodStops returns how many stops of category food the itinerary contains.
func (it Itinerary) FoodStops() int {
	n := 0
	for _, s := range it.Stops {
		if s.Type == StopFood {
			n++
		}
	}
	return n
}
