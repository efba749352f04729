// Package render draws computed site-plan layouts as SVG documents and PNG
// images.
package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"plotsite/internal/domain/entities"
	"plotsite/internal/domain/layout"
)

type palette struct {
	background  color.RGBA
	stroke      color.RGBA
	text        color.RGBA
	mutedText   color.RGBA
	road        color.RGBA
	roadText    color.RGBA
	park        color.RGBA
	highway     color.RGBA
	highwayText color.RGBA
	boundary    color.RGBA
	marking     color.RGBA
	accent      color.RGBA
	selected    color.RGBA
	status      map[entities.ParcelStatus]color.RGBA
}

var statusColors = map[entities.ParcelStatus]color.RGBA{
	entities.ParcelStatusAvailable: rgb(0x10b981),
	entities.ParcelStatusReserved:  rgb(0xf59e0b),
	entities.ParcelStatusSold:      rgb(0x64748b),
}

func paletteFor(style layout.Style) palette {
	switch style {
	case layout.StyleCanvas:
		return palette{
			background:  rgb(0xffffff),
			stroke:      rgb(0x000000),
			text:        rgb(0x000000),
			mutedText:   rgb(0x333333),
			road:        rgb(0xe5e7eb),
			roadText:    rgb(0x000000),
			park:        rgb(0x86efac),
			highway:     rgb(0x374151),
			highwayText: rgb(0xffffff),
			boundary:    rgb(0x000000),
			marking:     rgb(0xfbbf24),
			accent:      rgb(0xdc2626),
			selected:    rgb(0xfbbf24),
			status:      statusColors,
		}
	case layout.StyleBlueprint:
		return palette{
			background:  rgb(0xf8fafc),
			stroke:      rgb(0x1e3a8a),
			text:        rgb(0x0f172a),
			mutedText:   rgb(0x334155),
			road:        rgb(0xd1d5db),
			roadText:    rgb(0x374151),
			park:        rgb(0x4ade80),
			highway:     rgb(0x1f2937),
			highwayText: rgb(0xfbbf24),
			boundary:    rgb(0x1e3a8a),
			marking:     rgb(0xfbbf24),
			accent:      rgb(0xdc2626),
			selected:    rgb(0x2563eb),
			status:      statusColors,
		}
	}
	return palette{
		background:  rgb(0x0f172a),
		stroke:      rgb(0x1e293b),
		text:        rgb(0xffffff),
		mutedText:   rgb(0xcbd5e1),
		road:        rgb(0x334155),
		roadText:    rgb(0xfcd34d),
		park:        rgb(0x22c55e),
		highway:     rgb(0x1f2937),
		highwayText: rgb(0xfbbf24),
		boundary:    rgb(0xd4af37),
		marking:     rgb(0xfbbf24),
		accent:      rgb(0xf59e0b),
		selected:    rgb(0xfbbf24),
		status:      statusColors,
	}
}

func (p palette) parcelFill(s entities.ParcelStatus) color.RGBA {
	if c, ok := p.status[s]; ok {
		return c
	}
	return p.status[entities.ParcelStatusAvailable]
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func formatFloat(v float64) string {
	if math.Abs(v-math.Round(v)) < 1e-9 {
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func isSelected(s layout.Shape, selected *int) bool {
	return selected != nil && s.Kind == layout.ShapeParcel && s.ParcelID == *selected
}
