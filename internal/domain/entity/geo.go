// Package entity contains the core business objects of the project.
package entity

// GeoPoint is an immutable geographic coordinate pair in degrees.
// Latitude is in [-90, 90], longitude in [-180, 180]; producers (device
// sensors, stored records) are responsible for handing over valid values.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point lies inside the WGS84 coordinate ranges.
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
