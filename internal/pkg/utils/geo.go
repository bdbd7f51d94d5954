package utils

import "math"

// CalculateHaversineDistance computes the great-circle distance between two
// coordinates in meters.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // Earth radius in meters

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Round2 rounds to 2 decimal places for reporting.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateGeofence computes the distance in meters (rounded to 2 decimal
// places) between a reported coordinate and a site center, and whether the
// coordinate falls inside the site radius. The boundary is inclusive: a point
// at exactly radiusM is within.
//
// Out-of-range coordinates are accepted as-is; coordinate sanity is the
// caller's responsibility.
func ValidateGeofence(lat, lon, siteLat, siteLon float64, radiusM int) (distanceM float64, within bool) {
	distanceM = Round2(CalculateHaversineDistance(lat, lon, siteLat, siteLon))
	within = distanceM <= float64(radiusM)
	return distanceM, within
}
