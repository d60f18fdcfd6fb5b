package domain

// GeoPoint is a geographic coordinate in decimal degrees. Value type,
// no identity.
type GeoPoint struct {
	Lat float64
	Lng float64
}
