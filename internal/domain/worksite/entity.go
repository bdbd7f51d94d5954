package worksite

import "time"

// WorkSite is a circular geofence around a permitted clock-in location.
type WorkSite struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
	RadiusM   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
