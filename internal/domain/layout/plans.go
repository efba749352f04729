package layout

// gridPlan is the card grid: a two-column block of uniform cells with a
// short-row strip below it, the aisle road, and the frontage strip on the
// right facing the highway.
func gridPlan(c Constants) Plan {
	step := c.RowHeight + c.Gap
	blockW := 2*c.ColumnWidth + c.Gap
	westBottom := c.StartY + 9*step - c.Gap
	roadY := westBottom + c.Gap
	southY := roadY + c.RoadWidth + c.Gap
	southBottom := southY + c.SmallCellHeight
	aisleX := c.StartX + blockW + c.Gap
	rightX := aisleX + c.RoadWidth + c.Gap
	rightW := 4*c.SmallCellWidth + 3*c.Gap
	frontRoadY := c.StartY + c.SmallCellHeight + 2*c.Gap
	highwayY := frontRoadY + c.RoadWidth + 2*c.Gap
	labelY := highwayY + c.HighwayHeight + c.Gap

	const arm = 24
	cx := rightX + rightW + 3*c.Gap + arm

	return Plan{
		Mode:   ModeGrid,
		Style:  StyleDark,
		Width:  cx + arm + c.StartX,
		Height: southBottom + c.StartY,
		Background: []Shape{
			{Kind: ShapeRoad, Label: `25'-0" WIDE ROAD`, X: c.StartX, Y: roadY, Width: blockW, Height: c.RoadWidth},
			road(aisleX, c.StartY, c.RoadWidth, southBottom-c.StartY, true),
			road(rightX, frontRoadY, rightW, c.RoadWidth, false),
			{Kind: ShapeHighway, Label: "NH-4", X: rightX, Y: highwayY, Width: rightW, Height: c.HighwayHeight},
		},
		Bands: []Band{
			{Name: "west", Axis: AxisVertical, Origin: Point{c.StartX, c.StartY}, IDs: ids(17, 9),
				CellAlong: c.RowHeight, CellCross: c.ColumnWidth, Gap: c.Gap},
			{Name: "middle", Axis: AxisVertical, Origin: Point{c.StartX + c.ColumnWidth + c.Gap, c.StartY}, IDs: ids(1, 8),
				CellAlong: c.RowHeight, CellCross: c.ColumnWidth, Gap: c.Gap},
			{Name: "south", Axis: AxisHorizontal, Origin: Point{c.StartX, southY}, IDs: ids(21, 18),
				CellAlong: c.SmallCellWidth, CellCross: c.SmallCellHeight, Gap: c.Gap},
			{Name: "frontage", Axis: AxisHorizontal, Origin: Point{rightX, c.StartY}, IDs: ids(25, 22),
				CellAlong: c.SmallCellWidth, CellCross: c.SmallCellHeight, Gap: c.Gap},
		},
		Overlay: []Shape{
			label(ShapeLabel, "← BANGALORE", rightX+rightW/4, labelY),
			label(ShapeLabel, "TIRUPATHI →", rightX+3*rightW/4, labelY),
			compass(cx, c.StartY+arm, arm),
		},
	}
}

// surveyBoundary is the site outline traced on a 1000 × 1400 sheet.
var surveyBoundary = []Point{
	{100, 150}, {900, 100}, {950, 700}, {900, 1200}, {500, 1350}, {200, 1200}, {50, 700},
}

// topDownPlan places the two long columns inside the survey boundary with the
// 25 ft road closing them off and the short row beneath it.
func topDownPlan(c Constants) Plan {
	step := c.RowHeight + c.Gap
	westBottom := c.StartY + 9*step - c.Gap
	aisleX := c.StartX + c.ColumnWidth + 2*c.Gap
	eastX := aisleX + c.RoadWidth + 2*c.Gap
	blockW := eastX + c.ColumnWidth - c.StartX
	roadY := westBottom + 2*c.Gap
	southY := roadY + c.RoadWidth + 2*c.Gap

	sx, sy := c.ViewWidth/1000, c.ViewHeight/1400
	boundary := make([]Point, len(surveyBoundary))
	for i, p := range surveyBoundary {
		boundary[i] = Point{p.X * sx, p.Y * sy}
	}

	return Plan{
		Mode:   ModeTopDown,
		Style:  StyleDark,
		Width:  c.ViewWidth,
		Height: c.ViewHeight,
		Background: []Shape{
			{Kind: ShapeBoundary, Points: boundary},
			road(aisleX, c.StartY, c.RoadWidth, westBottom-c.StartY, true),
			{Kind: ShapeRoad, Label: `25'-0" WIDE ROAD`, X: c.StartX, Y: roadY, Width: blockW, Height: c.RoadWidth},
		},
		Bands: []Band{
			{Name: "west", Axis: AxisVertical, Origin: Point{c.StartX, c.StartY}, IDs: ids(17, 9),
				CellAlong: c.RowHeight, CellCross: c.ColumnWidth, Gap: c.Gap},
			{Name: "east", Axis: AxisVertical, Origin: Point{eastX, c.StartY}, IDs: ids(1, 8),
				CellAlong: c.RowHeight, CellCross: c.ColumnWidth, Gap: c.Gap},
			{Name: "south", Axis: AxisHorizontal, Origin: Point{c.StartX, southY}, IDs: ids(21, 18),
				CellAlong: c.SmallCellWidth, CellCross: c.SmallCellHeight, Gap: 2 * c.Gap},
		},
		Overlay: []Shape{
			compass(0.6*c.ViewWidth, 150*sy, 30),
			label(ShapeLabel, "NH-4 HIGHWAY  ← BANGALORE | TIRUPATHI →", c.ViewWidth/2, c.ViewHeight-40),
		},
	}
}

// perspectivePlan is the highway view: plots 9 to 17 stand on a common
// baseline and recede with distance from the viewer.
func perspectivePlan(c Constants) Plan {
	highwayY := c.ViewHeight - c.HighwayHeight
	params := c.Perspective
	return Plan{
		Mode:   ModePerspective,
		Style:  StyleDark,
		Width:  c.ViewWidth,
		Height: c.ViewHeight,
		Background: []Shape{
			{Kind: ShapeHighway, Label: "NH-4 HIGHWAY", X: 0, Y: highwayY, Width: c.ViewWidth, Height: c.HighwayHeight},
			{Kind: ShapeMarking, Points: []Point{{0, highwayY + 30}, {c.ViewWidth, highwayY + 30}}},
			{Kind: ShapeMarking, Points: []Point{{0, highwayY + 70}, {c.ViewWidth, highwayY + 70}}},
		},
		Bands: []Band{
			{Name: "frontline", Axis: AxisHorizontal, Origin: Point{c.StartX, c.StartY}, IDs: ids(9, 17),
				CellAlong: c.ColumnWidth, CellCross: c.RowHeight, Gap: c.Gap, Perspective: &params},
		},
		Overlay: []Shape{
			label(ShapeTitle, "KRISHNAMMAGARI DEVELOPERS", c.ViewWidth/2, 50),
			label(ShapeLabel, "Premium Residential Plots", c.ViewWidth/2, 85),
			label(ShapeLabel, "← BANGALORE | NH-4 HIGHWAY | TIRUPATHI →", c.ViewWidth/2, c.ViewHeight-40),
		},
	}
}

// canvasPlan is the full site drawing: three road spines, the park beside
// plot 9, the short and frontage rows and the NH-4 band.
func canvasPlan(c Constants) Plan {
	w, h, r := c.ColumnWidth, c.RowHeight, c.RoadWidth
	westX := c.StartX + r
	midRoadX := westX + w
	midX := midRoadX + r
	rightRoadX := midX + w
	rightX := rightRoadX + r
	totalW := rightX + w - c.StartX

	hRoad1Y := c.StartY + 4*h
	row5Y := hRoad1Y + r
	hRoad2Y := row5Y + h
	row6Y := hRoad2Y + r
	hRoad3Y := row6Y + 4*h
	southY := hRoad3Y + r
	frontY := southY + c.SmallCellHeight
	nhY := frontY + c.LargeCellHeight
	small := w / 2

	const arm = 40
	cx, cy := rightX+w+2*arm, c.StartY+130

	return Plan{
		Mode:   ModeCanvas,
		Style:  StyleCanvas,
		Width:  cx + 2*arm,
		Height: nhY + c.HighwayHeight + 2*c.StartY,
		Background: []Shape{
			{Kind: ShapeBoundary, Points: rectPoints(c.StartX, c.StartY, totalW, nhY+c.HighwayHeight-c.StartY)},
			road(c.StartX, c.StartY, r, hRoad1Y-c.StartY, true),
			road(midRoadX, c.StartY, r, hRoad3Y-c.StartY, true),
			road(rightRoadX, c.StartY, r, hRoad3Y-c.StartY, true),
			road(westX, hRoad1Y, w, r, false),
			road(midX, hRoad1Y, w, r, false),
			road(westX, hRoad2Y, totalW-r, r, false),
			road(westX, hRoad3Y, totalW-r, r, false),
			{Kind: ShapeHighway, Label: "NH-4 HIGHWAY", X: c.StartX, Y: nhY, Width: totalW, Height: c.HighwayHeight},
		},
		Bands: []Band{
			{Name: "west", Axis: AxisVertical, Origin: Point{westX, c.StartY}, IDs: []int{17, 16, 15, 14, 9, 13, 12, 11, 10},
				CellAlong: h, CellCross: w,
				Breaks:    map[int]float64{9: r, 13: r},
				CarveOuts: map[int]float64{9: c.ParkWidth}},
			{Name: "middle", Axis: AxisVertical, Origin: Point{midX, c.StartY}, IDs: ids(1, 8),
				CellAlong: h, CellCross: w,
				Breaks: map[int]float64{5: r + h + r}},
			{Name: "south", Axis: AxisHorizontal, Origin: Point{westX, southY}, IDs: ids(21, 18),
				CellAlong: small, CellCross: c.SmallCellHeight},
			{Name: "frontage", Axis: AxisHorizontal, Origin: Point{westX, frontY}, IDs: ids(25, 22),
				CellAlong: small, CellCross: c.LargeCellHeight},
		},
		Overlay: []Shape{
			label(ShapeLabel, "← BANGALORE", c.StartX+80, nhY+c.HighwayHeight+16),
			label(ShapeLabel, "TIRUPATHI →", c.StartX+totalW-80, nhY+c.HighwayHeight+16),
			compass(cx, cy, arm),
		},
	}
}

// precisionPlan sizes every plot from its surveyed width and depth. Row slots
// come from the nominal lot depths so the roads line up across columns no
// matter what the catalog holds.
func precisionPlan(c Constants) Plan {
	s, r := c.Scale, c.RoadWidth
	westX := c.StartX + r
	westW := c.ColumnFeet * s
	road1X := westX + westW
	midX := road1X + r
	midW := c.MiddleColumnFeet * s
	road2X := midX + midW
	right := road2X + r
	totalW := right - c.StartX

	first, row := c.FirstRowFeet*s, c.RowFeet*s
	hRoad1Y := c.StartY + first + 4*row
	hRoad2Y := hRoad1Y + r + 4*row
	shortY := hRoad2Y + r
	frontY := shortY + c.ShortRowFeet*s
	nhY := frontY + c.FrontageFeet*s

	const arm = 25
	return Plan{
		Mode:   ModePrecision,
		Style:  StyleBlueprint,
		Width:  right + 80,
		Height: nhY + c.HighwayHeight + 2*c.StartY,
		Scale:  s,
		Background: []Shape{
			{Kind: ShapeBoundary, Points: rectPoints(c.StartX, c.StartY, totalW, nhY+c.HighwayHeight-c.StartY)},
			road(c.StartX, c.StartY, r, nhY-c.StartY, true),
			road(road1X, c.StartY, r, hRoad2Y-c.StartY, true),
			road(road2X, c.StartY, r, hRoad2Y-c.StartY, true),
			road(c.StartX, hRoad1Y, totalW, r, false),
			road(c.StartX, hRoad2Y, totalW, r, false),
			{Kind: ShapeHighway, Label: "NH-4 HIGHWAY", X: c.StartX, Y: nhY, Width: totalW, Height: c.HighwayHeight},
		},
		Bands: []Band{
			{Name: "west", Axis: AxisVertical, Origin: Point{westX, c.StartY}, IDs: []int{17, 16, 15, 14, 9, 13, 12, 11, 10},
				Sizing: SizingProportional, CellAlong: row, CellCross: westW,
				Slots:     append([]float64{first}, repeat(row, 8)...),
				Breaks:    map[int]float64{13: r},
				CarveOuts: map[int]float64{9: c.ParkWidth}},
			{Name: "middle", Axis: AxisVertical, Origin: Point{midX, c.StartY}, IDs: ids(1, 8),
				Sizing: SizingProportional, CellAlong: row, CellCross: midW,
				Slots:  append([]float64{first}, repeat(row, 7)...),
				Breaks: map[int]float64{5: row + r}},
			{Name: "south", Axis: AxisHorizontal, Origin: Point{westX, shortY}, IDs: ids(21, 18),
				Sizing: SizingProportional, CellAlong: c.ShortRowFeet * s, CellCross: c.ShortRowFeet * s},
			{Name: "frontage", Axis: AxisHorizontal, Origin: Point{westX, frontY}, IDs: ids(25, 22),
				Sizing: SizingProportional, CellAlong: c.ShortRowFeet * s, CellCross: c.FrontageFeet * s},
		},
		Overlay: []Shape{
			label(ShapeLabel, "← BANGALORE", c.StartX+totalW/4, nhY+c.HighwayHeight+15),
			label(ShapeLabel, "TIRUPATHI →", c.StartX+3*totalW/4, nhY+c.HighwayHeight+15),
			compass(right+40, c.StartY+40, arm),
		},
	}
}
