package domain

// StopCategory classifies an itinerary stop.
type StopCategory string

const (
	StopFuel       StopCategory = "fuel"
	StopCharging   StopCategory = "charging"
	StopFood       StopCategory = "food"
	StopScenic     StopCategory = "scenic"
	StopAttraction StopCategory = "attraction"
)

// Coordinates is a WGS-84 latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is a single waypoint of an itinerary.
// The JSON tags define the persisted itinerary blob and must stay stable.
type Stop struct {
	Type     StopCategory `json:"type"`
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	Lat      float64      `json:"lat"`
	Lng      float64      `json:"lng"`
	Duration int          `json:"duration"` // minutes
	Notes    string       `json:"notes,omitempty"`
}

// Coordinates returns the stop location.
func (s Stop) Coordinates() Coordinates {
	return Coordinates{Lat: s.Lat, Lng: s.Lng}
}
