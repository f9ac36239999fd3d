package domain

import "slices"

// FoodOptions is the rough density of places to eat at a destination.
type FoodOptions string

const (
	FoodOptionsMany    FoodOptions = "many"
	FoodOptionsLimited FoodOptions = "limited"
)

// Destination is one entry of the static destination catalog.
// DistanceMiles and EstimatedDuration are catalog estimates from the fixed
// origin, not computed values.
type Destination struct {
	Name                string
	Description         string
	DistanceMiles       float64
	EstimatedDuration   int // minutes
	Location            Coordinates
	Tags                []string
	HasChargingStations bool
	FoodOptions         FoodOptions
}

// HasTag reports whether the destination carries the given descriptive tag.
func (d Destination) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

// Recommendation is a destination scored against one user's preferences.
// It has no identity of its own and is recomputed on every request.
type Recommendation struct {
	Destination       string   `json:"destination"`
	Description       string   `json:"description"`
	Distance          float64  `json:"distance"`
	EstimatedDuration int      `json:"estimatedDuration"`
	MatchScore        int      `json:"matchScore"`
	Highlights        []string `json:"highlights"`
	Lat               float64  `json:"lat"`
	Lng               float64  `json:"lng"`
}
