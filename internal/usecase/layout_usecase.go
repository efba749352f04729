package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"plotsite/internal/domain/layout"
	"plotsite/internal/usecase/interfaces"
)

// RenderFormat is an output encoding of a layout drawing.
type RenderFormat string

const (
	RenderFormatSVG RenderFormat = "svg"
	RenderFormatPNG RenderFormat = "png"
)

var ErrUnsupportedFormat = errors.New("unsupported render format")

// RenderedLayout is an encoded site-plan drawing.
type RenderedLayout struct {
	ContentType string
	Body        []byte
}

// ILayoutUseCase computes and draws the site plan for a rendering mode.
type ILayoutUseCase interface {
	Modes() []layout.Mode
	Compute(ctx context.Context, mode string) (layout.Layout, error)
	Render(ctx context.Context, mode string, format RenderFormat, selected *int) (RenderedLayout, error)
}

type LayoutUseCase struct {
	catalog   ICatalogUseCase
	renderers map[RenderFormat]interfaces.ILayoutRenderer
}

var _ ILayoutUseCase = (*LayoutUseCase)(nil)

func NewLayoutUseCase(catalog ICatalogUseCase, renderers map[RenderFormat]interfaces.ILayoutRenderer) *LayoutUseCase {
	return &LayoutUseCase{catalog: catalog, renderers: renderers}
}

func (u *LayoutUseCase) Modes() []layout.Mode {
	return layout.Modes()
}

// Compute returns the placed shapes of mode. Unknown modes yield an error
// wrapping layout.ErrUnknownMode.
func (u *LayoutUseCase) Compute(ctx context.Context, mode string) (layout.Layout, error) {
	m, err := layout.ParseMode(mode)
	if err != nil {
		return layout.Layout{}, err
	}
	parcels, err := u.catalog.GetAllParcels(ctx)
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.Compute(m, parcels)
}

func (u *LayoutUseCase) Render(ctx context.Context, mode string, format RenderFormat, selected *int) (RenderedLayout, error) {
	format = RenderFormat(strings.ToLower(strings.TrimSpace(string(format))))
	r, ok := u.renderers[format]
	if !ok {
		return RenderedLayout{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	l, err := u.Compute(ctx, mode)
	if err != nil {
		return RenderedLayout{}, err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, l, selected); err != nil {
		log.Printf("[layout][usecase] render failed mode=%s format=%s err=%v", l.Mode, format, err)
		return RenderedLayout{}, err
	}
	return RenderedLayout{ContentType: r.ContentType(), Body: buf.Bytes()}, nil
}
