package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects one of the site-plan renderings.
type Mode string

const (
	// ModeGrid is the flat card grid: uniform cells per column.
	ModeGrid Mode = "grid"
	// ModeTopDown is the SVG plan view inside the survey boundary.
	ModeTopDown Mode = "topdown"
	// ModePerspective is the "highway view": plots recede from the NH-4 frontage.
	ModePerspective Mode = "perspective"
	// ModeCanvas is the canvas drawing with roads, park, highway band and compass.
	ModeCanvas Mode = "canvas"
	// ModePrecision draws plots proportional to their surveyed dimensions.
	ModePrecision Mode = "precision"
)

var ErrUnknownMode = errors.New("unknown layout mode")

// Modes lists every supported mode in display order.
func Modes() []Mode {
	return []Mode{ModeGrid, ModeTopDown, ModePerspective, ModeCanvas, ModePrecision}
}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
