package layout

import (
	"math"

	"plotsite/internal/domain/entities"
)

// Compute lays out parcels for mode using the mode's default constants.
func Compute(mode Mode, parcels []entities.Parcel) (Layout, error) {
	c, err := DefaultConstants(mode)
	if err != nil {
		return Layout{}, err
	}
	return ComputeWith(mode, c, parcels)
}

// ComputeWith lays out parcels for mode from explicit constants.
//
// The result depends only on its inputs. Ids a plan names but the catalog
// lacks produce no shape; their slot is skipped so neighbours keep their
// position.
func ComputeWith(mode Mode, c Constants, parcels []entities.Parcel) (Layout, error) {
	plan, err := BuildPlan(mode, c)
	if err != nil {
		return Layout{}, err
	}
	return Place(plan, parcels), nil
}

// Place runs the band placement of a prepared plan.
func Place(plan Plan, parcels []entities.Parcel) Layout {
	byID := make(map[int]entities.Parcel, len(parcels))
	for _, p := range parcels {
		byID[p.ID] = p
	}

	shapes := make([]Shape, 0, len(plan.Background)+len(parcels)+len(plan.Overlay))
	shapes = append(shapes, plan.Background...)
	for _, b := range plan.Bands {
		shapes = append(shapes, placeBand(b, plan.Scale, byID)...)
	}
	shapes = append(shapes, plan.Overlay...)

	return Layout{
		Mode:   plan.Mode,
		Style:  plan.Style,
		Width:  plan.Width,
		Height: plan.Height,
		Shapes: shapes,
	}
}

func placeBand(b Band, scale float64, byID map[int]entities.Parcel) []Shape {
	if b.Perspective != nil {
		return placePerspective(b, byID)
	}

	var out []Shape
	cursor := 0.0
	for i, id := range b.IDs {
		cursor += b.Breaks[id]
		slot := b.CellAlong
		if i < len(b.Slots) {
			slot = b.Slots[i]
		}

		p, ok := byID[id]
		if !ok {
			cursor += slot + b.Gap
			continue
		}

		along, cross := b.CellAlong, b.CellCross
		if i < len(b.Slots) {
			along = slot
		}
		advance := along
		if b.Sizing == SizingProportional {
			along, cross = proportional(b, p, scale)
			if len(b.Slots) > 0 {
				along = math.Min(along, slot)
				advance = slot
			} else {
				advance = along
			}
		}

		s := parcelShape(p)
		if b.Axis == AxisVertical {
			s.X, s.Y, s.Width, s.Height = b.Origin.X, b.Origin.Y+cursor, cross, along
		} else {
			s.X, s.Y, s.Width, s.Height = b.Origin.X+cursor, b.Origin.Y, along, cross
		}

		if park, ok := b.CarveOuts[id]; ok && park > 0 {
			out = append(out, carve(&s, park, b.Axis))
		}
		out = append(out, s)
		cursor += advance + b.Gap
	}
	return out
}

// proportional returns the along and cross size of p at scale, with the
// cross size capped by the band.
func proportional(b Band, p entities.Parcel, scale float64) (along, cross float64) {
	if b.Axis == AxisVertical {
		along, cross = p.Depth.Feet()*scale, p.Width.Feet()*scale
	} else {
		along, cross = p.Width.Feet()*scale, p.Depth.Feet()*scale
	}
	if b.CellCross > 0 {
		cross = math.Min(cross, b.CellCross)
	}
	return along, cross
}

// carve takes a park strip of width park off the leading cross edge of s and
// returns the park shape.
func carve(s *Shape, park float64, axis Axis) Shape {
	p := Shape{Kind: ShapePark, Label: "PARK", ParcelID: s.ParcelID, X: s.X, Y: s.Y}
	if axis == AxisVertical {
		park = math.Min(park, s.Width)
		p.Width, p.Height, p.Rotation = park, s.Height, 90
		s.X += park
		s.Width -= park
	} else {
		park = math.Min(park, s.Height)
		p.Width, p.Height = s.Width, park
		s.Y += park
		s.Height -= park
	}
	return p
}

func placePerspective(b Band, byID map[int]entities.Parcel) []Shape {
	params := *b.Perspective
	step := b.CellAlong + b.Gap

	var out []Shape
	for i, id := range b.IDs {
		p, ok := byID[id]
		if !ok {
			continue
		}
		scale := PerspectiveScale(i, params.K)
		w, h := b.CellAlong*scale, b.CellCross*scale
		cx := b.Origin.X + float64(i)*step + PerspectiveOffset(i, params.D)

		s := parcelShape(p)
		s.X, s.Y, s.Width, s.Height = cx-w/2, b.Origin.Y-h, w, h
		s.Scale = scale
		s.Opacity = PerspectiveOpacity(i, params)
		out = append(out, s)
	}
	return out
}

// PerspectiveScale is the size factor of the i-th plot from the viewer.
func PerspectiveScale(i int, k float64) float64 {
	return 1 - float64(i)*k
}

// PerspectiveOffset is the horizontal shift of the i-th plot.
func PerspectiveOffset(i int, d float64) float64 {
	return float64(i) * d
}

func PerspectiveOpacity(i int, p PerspectiveParams) float64 {
	return math.Min(1, p.BaseOpacity+float64(i)*p.OpacityStep)
}

func parcelShape(p entities.Parcel) Shape {
	return Shape{
		Kind:     ShapeParcel,
		ParcelID: p.ID,
		Status:   p.Status,
		Caption:  p.Caption(),
		Opacity:  1,
	}
}
