package entities

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidDimension = errors.New("invalid dimension")

// maxDimensionFeet bounds a single side; larger values are data entry errors
// and would overflow the inch count.
const maxDimensionFeet = 10000

// Dimension is a surveyed length kept in whole inches.
//
// Both the display form (57'-6") and the numeric form used for area
// computation come from the same value.
type Dimension struct {
	inches int
}

var (
	dimensionPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:'|ft)?\s*(?:-?\s*(\d+(?:\.\d+)?)\s*(?:"|in)?)?$`)
	primeReplacer    = strings.NewReplacer("′", "'", "’", "'", "″", `"`, "”", `"`, "''", `"`)
)

// ParseDimension reads feet/inches notation: 50', 57'-6", 44'6", 39' 4".
// A bare number is read as feet.
func ParseDimension(s string) (Dimension, error) {
	raw := strings.TrimSpace(primeReplacer.Replace(s))
	if raw == "" {
		return Dimension{}, fmt.Errorf("%w: empty", ErrInvalidDimension)
	}

	m := dimensionPattern.FindStringSubmatch(raw)
	if m == nil {
		return Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}

	feet, err := strconv.ParseFloat(m[1], 64)
	if err != nil || feet > maxDimensionFeet {
		return Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}
	inches := 0.0
	if m[2] != "" {
		inches, err = strconv.ParseFloat(m[2], 64)
		if err != nil || inches >= 12 {
			return Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
		}
	}

	return Dimension{inches: int(math.Round(feet*12 + inches))}, nil
}

// MustParseDimension is ParseDimension for literals known to be valid.
func MustParseDimension(s string) Dimension {
	d, err := ParseDimension(s)
	if err != nil {
		panic(err)
	}
	return d
}

func DimensionFromFeet(feet float64) Dimension {
	return Dimension{inches: int(math.Round(feet * 12))}
}

func DimensionFromInches(inches int) Dimension {
	return Dimension{inches: inches}
}

func (d Dimension) Inches() int { return d.inches }

func (d Dimension) Feet() float64 { return float64(d.inches) / 12 }

func (d Dimension) IsZero() bool { return d.inches == 0 }

func (d Dimension) String() string {
	feet, inches := d.inches/12, d.inches%12
	if inches == 0 {
		return fmt.Sprintf("%d'", feet)
	}
	return fmt.Sprintf(`%d'-%d"`, feet, inches)
}

func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dimension) UnmarshalText(text []byte) error {
	parsed, err := ParseDimension(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
