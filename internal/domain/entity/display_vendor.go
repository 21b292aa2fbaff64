package entity

import (
	"github.com/google/uuid"
)

// DisplayVendor is the derived, customer-facing row of the ranked vendor
// list. It is recomputed from the directory, the live location set and the
// viewer's position on every relevant change, and is never persisted.
type DisplayVendor struct {
	VendorID   uuid.UUID `json:"vendor_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Rating     float64   `json:"rating"`
	IsLive     bool      `json:"is_live"`
	DistanceKm *float64  `json:"distance_km,omitempty"` // nil when the distance is unknown
	Position   *GeoPoint `json:"position,omitempty"`    // nil when the vendor has no live position
}

// HasDistance reports whether a numeric distance could be computed.
func (v *DisplayVendor) HasDistance() bool {
	return v.DistanceKm != nil
}
