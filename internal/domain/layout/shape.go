package layout

import "plotsite/internal/domain/entities"

// ShapeKind classifies a placed shape for the renderers.
type ShapeKind string

const (
	ShapeParcel   ShapeKind = "parcel"
	ShapeRoad     ShapeKind = "road"
	ShapePark     ShapeKind = "park"
	ShapeHighway  ShapeKind = "highway"
	ShapeMarking  ShapeKind = "marking"
	ShapeCompass  ShapeKind = "compass"
	ShapeBoundary ShapeKind = "boundary"
	ShapeLabel    ShapeKind = "label"
	ShapeTitle    ShapeKind = "title"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is a computed screen-space rectangle or label ready for drawing.
//
// Labels and titles are anchored at (X, Y) and have no extent. Boundaries and
// markings carry their outline in Points.
type Shape struct {
	Kind     ShapeKind             `json:"kind"`
	ParcelID int                   `json:"parcel_id,omitempty"`
	Label    string                `json:"label,omitempty"`
	Status   entities.ParcelStatus `json:"status,omitempty"`
	Caption  string                `json:"caption,omitempty"`
	X        float64               `json:"x"`
	Y        float64               `json:"y"`
	Width    float64               `json:"width"`
	Height   float64               `json:"height"`
	Rotation float64               `json:"rotation,omitempty"`
	Opacity  float64               `json:"opacity,omitempty"`
	Scale    float64               `json:"scale,omitempty"`
	Points   []Point               `json:"points,omitempty"`
}

// Overlaps reports whether two shapes share interior area. Touching edges do
// not count.
func (s Shape) Overlaps(o Shape) bool {
	const eps = 1e-6
	if s.Width <= 0 || s.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return s.X < o.X+o.Width-eps && o.X < s.X+s.Width-eps &&
		s.Y < o.Y+o.Height-eps && o.Y < s.Y+s.Height-eps
}

// Center returns the middle of the shape's box.
func (s Shape) Center() Point {
	return Point{X: s.X + s.Width/2, Y: s.Y + s.Height/2}
}

// Style names the palette a renderer should use for a layout.
type Style string

const (
	StyleDark      Style = "dark"
	StyleCanvas    Style = "canvas"
	StyleBlueprint Style = "blueprint"
)

// Layout is the output of the engine for one mode.
type Layout struct {
	Mode   Mode    `json:"mode"`
	Style  Style   `json:"style"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Shapes []Shape `json:"shapes"`
}

// Find returns the placed shape of a parcel.
func (l Layout) Find(parcelID int) (Shape, bool) {
	for _, s := range l.Shapes {
		if s.Kind == ShapeParcel && s.ParcelID == parcelID {
			return s, true
		}
	}
	return Shape{}, false
}

// Parcels returns the parcel shapes in placement order.
func (l Layout) Parcels() []Shape {
	var out []Shape
	for _, s := range l.Shapes {
		if s.Kind == ShapeParcel {
			out = append(out, s)
		}
	}
	return out
}

// Of returns every shape of the given kind.
func (l Layout) Of(kind ShapeKind) []Shape {
	var out []Shape
	for _, s := range l.Shapes {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
