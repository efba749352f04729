package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"plotsite/internal/domain/entities"
	"plotsite/internal/domain/layout"
	"plotsite/internal/usecase/interfaces"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var (
	parseFontOnce sync.Once
	parsedFont    *truetype.Font
	parseFontErr  error
)

func regularFont() (*truetype.Font, error) {
	parseFontOnce.Do(func() {
		parsedFont, parseFontErr = freetype.ParseFont(goregular.TTF)
	})
	return parsedFont, parseFontErr
}

// PNGRenderer rasterises a layout, the server-side counterpart of the canvas
// drawing. Scale multiplies the layout's logical size.
type PNGRenderer struct {
	Scale float64
}

var _ interfaces.ILayoutRenderer = PNGRenderer{}

func NewPNGRenderer() PNGRenderer {
	return PNGRenderer{Scale: 1}
}

func (PNGRenderer) ContentType() string {
	return "image/png"
}

func (r PNGRenderer) Render(w io.Writer, l layout.Layout, selected *int) error {
	f, err := regularFont()
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}

	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, int(math.Ceil(l.Width*scale)), int(math.Ceil(l.Height*scale)))),
		scale: scale,
		font:  f,
		faces: map[float64]font.Face{},
	}
	pal := paletteFor(l.Style)
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(pal.background), image.Point{}, draw.Src)

	for _, s := range l.Shapes {
		c.drawShape(s, l.Style, pal, isSelected(s, selected))
	}
	return png.Encode(w, c.img)
}

type canvas struct {
	img   *image.RGBA
	scale float64
	font  *truetype.Font
	faces map[float64]font.Face
}

func (c *canvas) drawShape(s layout.Shape, style layout.Style, pal palette, selected bool) {
	switch s.Kind {
	case layout.ShapeParcel:
		c.drawParcel(s, style, pal, selected)
	case layout.ShapeRoad:
		c.fillRect(s.X, s.Y, s.Width, s.Height, pal.road, 1)
		c.centeredText(s.Center(), s.Label, 10, pal.roadText, s.Rotation != 0)
	case layout.ShapePark:
		c.fillRect(s.X, s.Y, s.Width, s.Height, pal.park, 1)
		c.strokeRect(s.X, s.Y, s.Width, s.Height, 1, pal.stroke)
		c.centeredText(s.Center(), s.Label, 9, pal.text, s.Rotation != 0)
	case layout.ShapeHighway:
		c.fillRect(s.X, s.Y, s.Width, s.Height, pal.highway, 1)
		c.centeredText(s.Center(), s.Label, 16, pal.highwayText, false)
	case layout.ShapeMarking:
		c.polyline(s.Points, 3, pal.marking)
	case layout.ShapeBoundary:
		if len(s.Points) > 0 {
			pts := append(append([]layout.Point{}, s.Points...), s.Points[0])
			c.polyline(pts, 3, pal.boundary)
		}
	case layout.ShapeCompass:
		ctr, arm := s.Center(), s.Width/2
		c.polygon([]layout.Point{{X: ctr.X, Y: ctr.Y - arm*0.8}, {X: ctr.X - arm/4, Y: ctr.Y}, {X: ctr.X + arm/4, Y: ctr.Y}}, pal.accent)
		c.centeredText(layout.Point{X: ctr.X, Y: ctr.Y - arm - 6}, s.Label, 14, pal.mutedText, false)
	case layout.ShapeTitle:
		c.centeredText(layout.Point{X: s.X, Y: s.Y}, s.Label, 32, pal.accent, false)
	case layout.ShapeLabel:
		c.centeredText(layout.Point{X: s.X, Y: s.Y}, s.Label, 14, pal.mutedText, false)
	}
}

func (c *canvas) drawParcel(s layout.Shape, style layout.Style, pal palette, selected bool) {
	alpha := s.Opacity
	if alpha <= 0 {
		alpha = 1
	}
	c.fillRect(s.X, s.Y, s.Width, s.Height, pal.parcelFill(s.Status), alpha)

	stroke, width := pal.stroke, 2.0
	if selected {
		stroke, width = pal.selected, 4
	}
	c.strokeRect(s.X, s.Y, s.Width, s.Height, width, stroke)

	if style == layout.StyleBlueprint && s.Status == entities.ParcelStatusSold {
		c.line(layout.Point{X: s.X, Y: s.Y}, layout.Point{X: s.X + s.Width, Y: s.Y + s.Height}, 2, pal.accent)
		c.line(layout.Point{X: s.X + s.Width, Y: s.Y}, layout.Point{X: s.X, Y: s.Y + s.Height}, 2, pal.accent)
	}

	idSize, captionSize := 16.0, 9.0
	if s.Scale > 0 {
		idSize, captionSize = idSize*s.Scale, captionSize*s.Scale
	}
	ctr := s.Center()
	c.centeredText(layout.Point{X: ctr.X, Y: ctr.Y - captionSize/2}, fmt.Sprintf("%d", s.ParcelID), idSize, pal.text, false)
	c.centeredText(layout.Point{X: ctr.X, Y: ctr.Y + idSize/2 + captionSize/2}, s.Caption, captionSize, pal.text, false)
}

func (c *canvas) fillRect(x, y, w, h float64, col color.RGBA, alpha float64) {
	r := image.Rect(c.px(x), c.px(y), c.px(x+w), c.px(y+h)).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	if alpha >= 1 {
		draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(alpha * 0xff))})
	draw.DrawMask(c.img, r, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *canvas) strokeRect(x, y, w, h, width float64, col color.RGBA) {
	c.fillRect(x, y, w, width, col, 1)
	c.fillRect(x, y+h-width, w, width, col, 1)
	c.fillRect(x, y, width, h, col, 1)
	c.fillRect(x+w-width, y, width, h, col, 1)
}

// line rasterises a segment of the given width as a thin quad.
func (c *canvas) line(a, b layout.Point, width float64, col color.RGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	ox, oy := -dy/n*width/2, dx/n*width/2
	c.polygon([]layout.Point{
		{X: a.X + ox, Y: a.Y + oy}, {X: b.X + ox, Y: b.Y + oy},
		{X: b.X - ox, Y: b.Y - oy}, {X: a.X - ox, Y: a.Y - oy},
	}, col)
}

func (c *canvas) polyline(pts []layout.Point, width float64, col color.RGBA) {
	for i := 1; i < len(pts); i++ {
		c.line(pts[i-1], pts[i], width, col)
	}
}

func (c *canvas) polygon(pts []layout.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X*c.scale), float32(pts[0].Y*c.scale))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X*c.scale), float32(p.Y*c.scale))
	}
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// centeredText draws value centred on at. Vertical labels are stacked one
// rune per line.
func (c *canvas) centeredText(at layout.Point, value string, size float64, col color.RGBA, vertical bool) {
	if value == "" {
		return
	}
	face := c.face(size)
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: face}
	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()

	lines := []string{value}
	if vertical {
		lines = lines[:0]
		for _, r := range value {
			lines = append(lines, string(r))
		}
	}

	top := c.px(at.Y) - len(lines)*lineH/2
	for i, line := range lines {
		adv := d.MeasureString(line).Ceil()
		d.Dot = fixed.Point26_6{
			X: fixed.I(c.px(at.X) - adv/2),
			Y: fixed.I(top + i*lineH + m.Ascent.Ceil()),
		}
		d.DrawString(line)
	}
}

func (c *canvas) face(size float64) font.Face {
	size = math.Round(size*c.scale*2) / 2
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.font, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	c.faces[size] = f
	return f
}

func (c *canvas) px(v float64) int {
	return int(math.Round(v * c.scale))
}
