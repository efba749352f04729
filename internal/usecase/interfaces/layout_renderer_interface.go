package interfaces

import (
	"io"
	"plotsite/internal/domain/layout"
)

// ILayoutRenderer draws a computed layout in one output format.
// selected, when non-nil, is highlighted.
type ILayoutRenderer interface {
	Render(w io.Writer, l layout.Layout, selected *int) error
	ContentType() string
}
