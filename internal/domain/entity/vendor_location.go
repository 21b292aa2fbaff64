package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorLocation is a vendor's last known position and activity flag.
// At most one record exists per vendor; writes are idempotent replacements
// keyed by VendorID (upsert-on-conflict), never appends.
type VendorLocation struct {
	VendorID    uuid.UUID `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"` // Denormalized for display without a directory join.
	Position    GeoPoint  `json:"position"`
	IsActive    bool      `json:"is_active"` // True while the vendor's beacon loop is running.
	LastUpdated time.Time `json:"last_updated"`
}

// LiveAt reports whether the record counts as live at the given instant.
// A record older than the staleness cutoff is treated as offline even when
// the beacon never managed to flip IsActive off (crash, network loss).
func (l *VendorLocation) LiveAt(now time.Time, staleAfter time.Duration) bool {
	if l == nil || !l.IsActive {
		return false
	}
	if staleAfter <= 0 {
		return true
	}

	return now.Sub(l.LastUpdated) <= staleAfter
}
