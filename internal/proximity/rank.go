// Package proximity builds the customer-facing ranked vendor list and keeps
// it current against the realtime location feed.
package proximity

import (
	"sort"
	"time"

	"pushcart/internal/domain/entity"
	"pushcart/internal/geo"

	"github.com/google/uuid"
)

// Rank merges the vendor directory with the live location set and orders the
// result by distance from the viewer. It is a pure function of its inputs.
//
// A vendor is live when its location row passes the staleness check. Distance
// requires both a live position and a viewer position; when either is missing
// the entry keeps a nil distance and sorts after every measured one, with a
// stable name tie-break. Live rows without a directory entry (approval racing
// a broadcast, or a trimmed directory fetch) synthesize a minimal entry
// rather than vanish from the list.
func Rank(
	vendors []*entity.Vendor,
	locations []*entity.VendorLocation,
	viewer *entity.GeoPoint,
	now time.Time,
	staleAfter time.Duration,
) []entity.DisplayVendor {
	liveByVendor := make(map[uuid.UUID]*entity.VendorLocation, len(locations))
	for _, loc := range locations {
		if loc.LiveAt(now, staleAfter) {
			liveByVendor[loc.VendorID] = loc
		}
	}

	display := make([]entity.DisplayVendor, 0, len(vendors)+len(liveByVendor))
	seen := make(map[uuid.UUID]struct{}, len(vendors))

	for _, vendor := range vendors {
		seen[vendor.ID] = struct{}{}
		row := entity.DisplayVendor{
			VendorID: vendor.ID,
			Name:     vendor.VendorName,
			Category: vendor.Category,
			Rating:   vendor.Rating,
		}

		if loc, ok := liveByVendor[vendor.ID]; ok {
			row.IsLive = true
			pos := loc.Position
			row.Position = &pos
			if viewer != nil {
				d := geo.DistanceKm(*viewer, loc.Position)
				row.DistanceKm = &d
			}
		}

		display = append(display, row)
	}

	for _, loc := range locations {
		live, ok := liveByVendor[loc.VendorID]
		if !ok {
			continue
		}
		if _, listed := seen[loc.VendorID]; listed {
			continue
		}

		row := entity.DisplayVendor{
			VendorID: live.VendorID,
			Name:     live.VendorName,
			IsLive:   true,
		}
		pos := live.Position
		row.Position = &pos
		if viewer != nil {
			d := geo.DistanceKm(*viewer, live.Position)
			row.DistanceKm = &d
		}

		display = append(display, row)
		seen[loc.VendorID] = struct{}{}
	}

	sort.SliceStable(display, func(i, j int) bool {
		a, b := &display[i], &display[j]
		switch {
		case a.HasDistance() && b.HasDistance():
			if *a.DistanceKm != *b.DistanceKm {
				return *a.DistanceKm < *b.DistanceKm
			}

			return a.Name < b.Name
		case a.HasDistance():
			return true
		case b.HasDistance():
			return false
		default:
			return a.Name < b.Name
		}
	})

	return display
}
