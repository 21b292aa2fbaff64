// Package geo provides pure geometric helpers for vendor proximity math.
package geo

import (
	"math"

	"pushcart/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Earth radius in kilometers used for the Haversine computation.
const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle distance between two points using the
// Haversine formula. The result is rounded to two decimal places for display;
// the computation itself runs at full float64 precision. The formula wraps
// longitude through the trigonometric identities, so pairs straddling the
// antimeridian or near the poles come out correct.
func DistanceKm(a, b entity.GeoPoint) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return round2(earthRadiusKm * c)
}

// Point converts an entity GeoPoint to an orb point (longitude first).
func Point(p entity.GeoPoint) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// WithinRadius reports whether candidate lies within radiusKm of center.
// A bounding-box check prefilters far-away points cheaply; the Haversine
// distance settles candidates near the box edge.
func WithinRadius(center, candidate entity.GeoPoint, radiusKm float64) bool {
	bound := orbgeo.NewBoundAroundPoint(Point(center), radiusKm*1000)
	if !bound.Contains(Point(candidate)) {
		return false
	}

	return DistanceKm(center, candidate) <= radiusKm
}

func toRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func round2(km float64) float64 {
	return math.Round(km*100) / 100
}
