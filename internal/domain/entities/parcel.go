package entities

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ParcelStatus represents the sales state of a plot.
//
// It drives the colour used by every layout renderer and whether the plot
// can be selected for an inquiry.
type ParcelStatus string

const (
	ParcelStatusAvailable ParcelStatus = "available"
	ParcelStatusReserved  ParcelStatus = "reserved"
	ParcelStatusSold      ParcelStatus = "sold"
)

func (s ParcelStatus) Valid() bool {
	switch s {
	case ParcelStatusAvailable, ParcelStatusReserved, ParcelStatusSold:
		return true
	}
	return false
}

// Parcel is one sellable plot of the subdivision.
//
// Storage model (DynamoDB "plots" table):
//   - PK: id
//   - plot_number mirrors ID and defines the catalog order
//   - width/height hold the feet-inches strings shown on the site plan
//
// SqFt is the precomputed area published on the brochure. When set it must
// match Area().
type Parcel struct {
	ID        int
	Width     Dimension
	Depth     Dimension
	SqFt      int
	Status    ParcelStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Area returns width × depth in square feet, rounded to the nearest foot.
func (p Parcel) Area() int {
	return int(math.Round(float64(p.Width.Inches()*p.Depth.Inches()) / 144))
}

// Caption is the dimension label drawn inside the plot.
func (p Parcel) Caption() string {
	return fmt.Sprintf("%s × %s", p.Width, p.Depth)
}

// PlotNumber is the display name used on the site and in emails.
func (p Parcel) PlotNumber() string {
	return fmt.Sprintf("Plot #%d", p.ID)
}

func (p Parcel) IsSold() bool {
	return p.Status == ParcelStatusSold
}

// Selectable reports whether the parcel may be picked for an inquiry.
func (p Parcel) Selectable() bool {
	return !p.IsSold()
}

var (
	ErrDuplicateParcelID = errors.New("duplicate parcel id")
	ErrInvalidParcel     = errors.New("invalid parcel")
)

// ValidateCatalog checks the catalog invariants: positive unique ids, positive
// dimensions, a known status and a consistent precomputed area.
func ValidateCatalog(parcels []Parcel) error {
	var errs []error
	seen := make(map[int]struct{}, len(parcels))
	for _, p := range parcels {
		if p.ID <= 0 {
			errs = append(errs, fmt.Errorf("%w: id=%d", ErrInvalidParcel, p.ID))
			continue
		}
		if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: id=%d", ErrDuplicateParcelID, p.ID))
		}
		seen[p.ID] = struct{}{}
		if p.Width.Inches() <= 0 || p.Depth.Inches() <= 0 {
			errs = append(errs, fmt.Errorf("%w: id=%d width=%s depth=%s", ErrInvalidParcel, p.ID, p.Width, p.Depth))
		}
		if !p.Status.Valid() {
			errs = append(errs, fmt.Errorf("%w: id=%d status=%q", ErrInvalidParcel, p.ID, p.Status))
		}
		if p.SqFt != 0 && p.SqFt != p.Area() {
			errs = append(errs, fmt.Errorf("%w: id=%d sq_ft=%d area=%d", ErrInvalidParcel, p.ID, p.SqFt, p.Area()))
		}
	}
	return errors.Join(errs...)
}

// FindParcel looks up a parcel by id.
func FindParcel(parcels []Parcel, id int) (Parcel, bool) {
	for _, p := range parcels {
		if p.ID == id {
			return p, true
		}
	}
	return Parcel{}, false
}
