// Package haversine computes great-circle distances between two
// points given as latitude/longitude in decimal degrees.
package haversine

import "math"

// EarthRadiusKm is the mean Earth radius used by the formula
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between
// (lat1, lon1) and (lat2, lon2). The result is symmetric, non-negative
// and zero for coinciding points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
