package layout

// PerspectiveParams drive the receding-distance transform of the highway view.
//
// For index i in a band: scale = 1 - i*K, x offset = i*D and
// opacity = BaseOpacity + i*OpacityStep.
type PerspectiveParams struct {
	K           float64
	D           float64
	BaseOpacity float64
	OpacityStep float64
}

// Constants is the Layout Constant Set of one mode. All coordinates of a
// plan are derived from these values. Fields a mode does not use stay zero.
type Constants struct {
	StartX float64
	StartY float64

	RoadWidth   float64
	ColumnWidth float64
	RowHeight   float64
	Gap         float64

	SmallCellWidth  float64
	SmallCellHeight float64
	LargeCellHeight float64

	ParkWidth     float64
	HighwayHeight float64

	// Proportional sizing: pixels per foot and the nominal lot depths and
	// frontages that fix row and column slots.
	Scale            float64
	FirstRowFeet     float64
	RowFeet          float64
	ColumnFeet       float64
	MiddleColumnFeet float64
	ShortRowFeet     float64
	FrontageFeet     float64

	ViewWidth  float64
	ViewHeight float64

	Perspective PerspectiveParams
}

// DefaultConstants returns the reference constants for mode. The result is a
// copy; callers may tweak it and pass it to BuildPlan.
func DefaultConstants(mode Mode) (Constants, error) {
	switch mode {
	case ModeGrid:
		return Constants{
			StartX:          32,
			StartY:          32,
			RoadWidth:       64,
			ColumnWidth:     150,
			RowHeight:       96,
			Gap:             16,
			SmallCellWidth:  67,
			SmallCellHeight: 192,
			HighwayHeight:   48,
		}, nil
	case ModeTopDown:
		return Constants{
			StartX:          150,
			StartY:          180,
			RoadWidth:       50,
			ColumnWidth:     130,
			RowHeight:       100,
			Gap:             5,
			SmallCellWidth:  85,
			SmallCellHeight: 130,
			ViewWidth:       1000,
			ViewHeight:      1400,
		}, nil
	case ModePerspective:
		return Constants{
			StartX:        80,
			StartY:        150,
			ColumnWidth:   90,
			RowHeight:     120,
			Gap:           25,
			HighwayHeight: 250,
			ViewWidth:     1200,
			ViewHeight:    600,
			Perspective: PerspectiveParams{
				K:           0.08,
				D:           15,
				BaseOpacity: 0.7,
				OpacityStep: 0.035,
			},
		}, nil
	case ModeCanvas:
		return Constants{
			StartX:          0,
			StartY:          20,
			RoadWidth:       50,
			ColumnWidth:     160,
			RowHeight:       90,
			SmallCellHeight: 100,
			LargeCellHeight: 240,
			ParkWidth:       50,
			HighwayHeight:   35,
		}, nil
	case ModePrecision:
		return Constants{
			StartX:           25,
			StartY:           25,
			RoadWidth:        56.875,
			ParkWidth:        22,
			HighwayHeight:    40,
			Scale:            1.35,
			FirstRowFeet:     34,
			RowFeet:          30,
			ColumnFeet:       57.5,
			MiddleColumnFeet: 50,
			ShortRowFeet:     40,
			FrontageFeet:     100,
		}, nil
	}
	return Constants{}, ErrUnknownMode
}
