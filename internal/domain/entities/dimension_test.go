package entities

import (
	"errors"
	"testing"
)

func TestParseDimension(t *testing.T) {
	cases := []struct {
		in     string
		inches int
		out    string
	}{
		{in: "50'", inches: 600, out: "50'"},
		{in: `57'-6"`, inches: 690, out: `57'-6"`},
		{in: `44'6"`, inches: 534, out: `44'-6"`},
		{in: `39' 4"`, inches: 472, out: `39'-4"`},
		{in: `19'-6''`, inches: 234, out: `19'-6"`},
		{in: "100", inches: 1200, out: "100'"},
		{in: " 35' ", inches: 420, out: "35'"},
		{in: "40′-6″", inches: 486, out: `40'-6"`},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDimension(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Inches() != tc.inches {
				t.Fatalf("expected %d inches, got %d", tc.inches, d.Inches())
			}
			if d.String() != tc.out {
				t.Fatalf("expected %q, got %q", tc.out, d.String())
			}
		})
	}
}

func TestParseDimension_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", `50'-13"`, "-5'", `'6"`, "10001'", "99999999999999999999'"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseDimension(in); !errors.Is(err, ErrInvalidDimension) {
				t.Fatalf("expected ErrInvalidDimension, got %v", err)
			}
		})
	}
}

func TestDimension_FeetAndText(t *testing.T) {
	d := DimensionFromFeet(53.25)
	if d.String() != `53'-3"` {
		t.Fatalf("unexpected string %q", d.String())
	}
	if d.Feet() != 53.25 {
		t.Fatalf("unexpected feet %v", d.Feet())
	}

	var back Dimension
	text, _ := d.MarshalText()
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != d {
		t.Fatalf("expected %v, got %v", d, back)
	}
	if err := back.UnmarshalText([]byte("wide")); err == nil {
		t.Fatalf("expected error")
	}
}
