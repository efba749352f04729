package layout

// Axis is the direction a band advances in.
type Axis int

const (
	// AxisVertical stacks cells top to bottom (a column of plots).
	AxisVertical Axis = iota
	// AxisHorizontal lays cells left to right (a row of plots).
	AxisHorizontal
)

// Sizing chooses how a band sizes its cells.
type Sizing int

const (
	// SizingUniform gives every cell the band's cell size.
	SizingUniform Sizing = iota
	// SizingProportional scales each cell from the parcel's own dimensions.
	SizingProportional
)

// Band is one row or column of parcels in a plan.
//
// Along is the advancing axis, cross the other one. For vertical bands the
// along size of a parcel is its depth and the cross size its width; for
// horizontal bands it is the other way round.
type Band struct {
	Name   string
	Axis   Axis
	Origin Point
	IDs    []int
	Sizing Sizing

	// CellAlong is the uniform along size. Proportional bands without Slots
	// advance by it when a parcel is missing from the catalog.
	CellAlong float64
	// CellCross is the uniform cross size and the cap for proportional cells.
	CellCross float64
	// Slots optionally fixes the along advance per index. Proportional
	// cells are capped to their slot.
	Slots []float64
	Gap   float64

	// Breaks adds an along offset before an id, typically a road crossing.
	Breaks map[int]float64
	// CarveOuts reserves a park strip of the given width on the leading cross
	// edge of a parcel.
	CarveOuts map[int]float64

	// Perspective, when set, shrinks and shifts cells by index. Cells then
	// stand on Origin.Y as their baseline.
	Perspective *PerspectiveParams
}

// Plan is the mode-specific arrangement handed to the engine: where each
// band starts plus the fixed shapes drawn behind and above the parcels.
type Plan struct {
	Mode       Mode
	Style      Style
	Width      float64
	Height     float64
	Scale      float64
	Background []Shape
	Bands      []Band
	Overlay    []Shape
}

// BuildPlan derives the plan of mode from c.
func BuildPlan(mode Mode, c Constants) (Plan, error) {
	switch mode {
	case ModeGrid:
		return gridPlan(c), nil
	case ModeTopDown:
		return topDownPlan(c), nil
	case ModePerspective:
		return perspectivePlan(c), nil
	case ModeCanvas:
		return canvasPlan(c), nil
	case ModePrecision:
		return precisionPlan(c), nil
	}
	return Plan{}, ErrUnknownMode
}

// IDs returns every parcel id the plan places, in placement order.
func (p Plan) IDs() []int {
	var out []int
	for _, b := range p.Bands {
		out = append(out, b.IDs...)
	}
	return out
}

func ids(from, to int) []int {
	step := 1
	if to < from {
		step = -1
	}
	var out []int
	for id := from; ; id += step {
		out = append(out, id)
		if id == to {
			return out
		}
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func road(x, y, w, h float64, vertical bool) Shape {
	s := Shape{Kind: ShapeRoad, Label: "25' ROAD", X: x, Y: y, Width: w, Height: h}
	if vertical {
		s.Rotation = 90
	}
	return s
}

func label(kind ShapeKind, text string, x, y float64) Shape {
	return Shape{Kind: kind, Label: text, X: x, Y: y}
}

func compass(cx, cy, arm float64) Shape {
	return Shape{Kind: ShapeCompass, Label: "N", X: cx - arm, Y: cy - arm, Width: 2 * arm, Height: 2 * arm}
}

func rectPoints(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}
