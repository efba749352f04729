package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusOverride forces the status of one parcel after the catalog is
// loaded. It reconciles corrections that have not reached the data source yet.
type StatusOverride struct {
	ID     int
	Status ParcelStatus
}

// DefaultStatusOverrides are the corrections applied to the published catalog.
var DefaultStatusOverrides = []StatusOverride{
	{ID: 1, Status: ParcelStatusSold},
	{ID: 2, Status: ParcelStatusSold},
	{ID: 7, Status: ParcelStatusAvailable},
	{ID: 8, Status: ParcelStatusAvailable},
}

// ApplyStatusOverrides returns a copy of parcels with the overrides applied.
// Order is preserved and the input slice is left untouched. Applying the same
// overrides twice yields the same result as applying them once.
func ApplyStatusOverrides(parcels []Parcel, overrides []StatusOverride) []Parcel {
	if parcels == nil {
		return nil
	}
	forced := make(map[int]ParcelStatus, len(overrides))
	for _, o := range overrides {
		forced[o.ID] = o.Status
	}

	out := make([]Parcel, len(parcels))
	for i, p := range parcels {
		if s, ok := forced[p.ID]; ok {
			p.Status = s
		}
		out[i] = p
	}
	return out
}

// ParseStatusOverrides reads "1:sold,2:sold,7:available".
// An empty string means no overrides.
func ParseStatusOverrides(s string) ([]StatusOverride, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []StatusOverride
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idStr, statusStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid status override %q", part)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid status override id %q", idStr)
		}
		status := ParcelStatus(strings.ToLower(strings.TrimSpace(statusStr)))
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status override status %q", statusStr)
		}
		out = append(out, StatusOverride{ID: id, Status: status})
	}
	return out, nil
}
