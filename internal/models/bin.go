package models

// Bin is a recycling drop-off point sourced from OpenStreetMap or a fixture.
type Bin struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Type        string  `json:"type"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Hours       string  `json:"hours"`
	DistanceKm  float64 `json:"distance_km"`
}
