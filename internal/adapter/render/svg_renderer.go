package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"

	"plotsite/internal/domain/entities"
	"plotsite/internal/domain/layout"
	"plotsite/internal/usecase/interfaces"
)

// SVGRenderer writes a layout as a standalone SVG document, one element per
// line. Parcels carry data-parcel-id and data-status so a page script can
// wire clicks to the selection API.
type SVGRenderer struct{}

var _ interfaces.ILayoutRenderer = SVGRenderer{}

func NewSVGRenderer() SVGRenderer {
	return SVGRenderer{}
}

func (SVGRenderer) ContentType() string {
	return "image/svg+xml"
}

func (r SVGRenderer) Render(w io.Writer, l layout.Layout, selected *int) error {
	pal := paletteFor(l.Style)

	var elements []string
	elements = append(elements, fmt.Sprintf(`<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`,
		formatFloat(l.Width), formatFloat(l.Height), hex(pal.background)))
	for _, s := range l.Shapes {
		elements = append(elements, r.renderShape(s, l.Style, pal, isSelected(s, selected))...)
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" data-mode="%s">`,
		formatFloat(l.Width), formatFloat(l.Height), formatFloat(l.Width), formatFloat(l.Height), l.Mode))
	builder.WriteString("\n")
	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}
	builder.WriteString(`</svg>`)
	builder.WriteString("\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

func (r SVGRenderer) renderShape(s layout.Shape, style layout.Style, pal palette, selected bool) []string {
	switch s.Kind {
	case layout.ShapeParcel:
		return r.renderParcel(s, style, pal, selected)
	case layout.ShapeRoad:
		return []string{
			rect(s, hex(pal.road), "", 0),
			text(s.Center(), s.Label, 10, hex(pal.roadText), s.Rotation, "bold"),
		}
	case layout.ShapePark:
		return []string{
			rect(s, hex(pal.park), hex(pal.stroke), 1),
			text(s.Center(), s.Label, 9, hex(pal.text), s.Rotation, "bold"),
		}
	case layout.ShapeHighway:
		return []string{
			rect(s, hex(pal.highway), "", 0),
			text(s.Center(), s.Label, 16, hex(pal.highwayText), 0, "bold"),
		}
	case layout.ShapeMarking:
		return []string{fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="3" stroke-dasharray="20,15"/>`,
			points(s.Points), hex(pal.marking))}
	case layout.ShapeBoundary:
		return []string{fmt.Sprintf(`<polygon points="%s" fill="none" stroke="%s" stroke-width="3" stroke-dasharray="10,5"/>`,
			points(s.Points), hex(pal.boundary))}
	case layout.ShapeCompass:
		return compassElements(s, pal)
	case layout.ShapeTitle:
		return []string{text(layout.Point{X: s.X, Y: s.Y}, s.Label, 32, hex(pal.accent), 0, "bold")}
	case layout.ShapeLabel:
		return []string{text(layout.Point{X: s.X, Y: s.Y}, s.Label, 14, hex(pal.mutedText), 0, "bold")}
	}
	return nil
}

func (r SVGRenderer) renderParcel(s layout.Shape, style layout.Style, pal palette, selected bool) []string {
	stroke, width := hex(pal.stroke), 2.0
	if selected {
		stroke, width = hex(pal.selected), 4
	}

	var open string
	if s.Opacity > 0 && s.Opacity < 1 {
		open = fmt.Sprintf(`<g data-parcel-id="%d" data-status="%s" opacity="%s">`, s.ParcelID, s.Status, formatFloat(s.Opacity))
	} else {
		open = fmt.Sprintf(`<g data-parcel-id="%d" data-status="%s">`, s.ParcelID, s.Status)
	}

	idSize, captionSize := 16.0, 9.0
	if s.Scale > 0 {
		idSize, captionSize = idSize*s.Scale, captionSize*s.Scale
	}
	c := s.Center()

	out := []string{
		open,
		"  " + rect(s, hex(pal.parcelFill(s.Status)), stroke, width),
		"  " + text(layout.Point{X: c.X, Y: c.Y - captionSize/2}, fmt.Sprintf("%d", s.ParcelID), idSize, hex(pal.text), 0, "bold"),
		"  " + text(layout.Point{X: c.X, Y: c.Y + idSize/2 + captionSize/2}, s.Caption, captionSize, hex(pal.text), 0, ""),
	}
	if style == layout.StyleBlueprint && s.Status == entities.ParcelStatusSold {
		out = append(out,
			fmt.Sprintf(`  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`,
				formatFloat(s.X), formatFloat(s.Y), formatFloat(s.X+s.Width), formatFloat(s.Y+s.Height), hex(pal.accent)),
			fmt.Sprintf(`  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`,
				formatFloat(s.X+s.Width), formatFloat(s.Y), formatFloat(s.X), formatFloat(s.Y+s.Height), hex(pal.accent)),
		)
	}
	return append(out, `</g>`)
}

func compassElements(s layout.Shape, pal palette) []string {
	c := s.Center()
	arm := s.Width / 2
	tip := arm * 0.8
	return []string{
		fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="2"/>`,
			formatFloat(c.X), formatFloat(c.Y), formatFloat(arm), hex(pal.mutedText)),
		fmt.Sprintf(`<path d="M %s %s L %s %s L %s %s Z" fill="%s"/>`,
			formatFloat(c.X), formatFloat(c.Y-tip),
			formatFloat(c.X-arm/4), formatFloat(c.Y),
			formatFloat(c.X+arm/4), formatFloat(c.Y), hex(pal.accent)),
		text(layout.Point{X: c.X, Y: c.Y - arm - 6}, s.Label, 14, hex(pal.mutedText), 0, "bold"),
	}
}

func rect(s layout.Shape, fill, stroke string, strokeWidth float64) string {
	attrs := fmt.Sprintf(`x="%s" y="%s" width="%s" height="%s" fill="%s"`,
		formatFloat(s.X), formatFloat(s.Y), formatFloat(s.Width), formatFloat(s.Height), fill)
	if stroke != "" {
		attrs += fmt.Sprintf(` stroke="%s" stroke-width="%s"`, stroke, formatFloat(strokeWidth))
	}
	return "<rect " + attrs + "/>"
}

func text(at layout.Point, value string, size float64, fill string, rotation float64, weight string) string {
	attrs := fmt.Sprintf(`x="%s" y="%s" font-size="%s" fill="%s" text-anchor="middle" dominant-baseline="middle" font-family="Arial, sans-serif"`,
		formatFloat(at.X), formatFloat(at.Y), formatFloat(size), fill)
	if weight != "" {
		attrs += fmt.Sprintf(` font-weight="%s"`, weight)
	}
	if rotation != 0 && !math.IsNaN(rotation) {
		attrs += fmt.Sprintf(` transform="rotate(%s %s %s)"`, formatFloat(rotation), formatFloat(at.X), formatFloat(at.Y))
	}
	return "<text " + attrs + ">" + escape(value) + "</text>"
}

func points(pts []layout.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
	}
	return strings.Join(parts, " ")
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
