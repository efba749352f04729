package entities

import (
	"errors"
	"reflect"
	"testing"
)

func parcel(id int, width, depth string, status ParcelStatus) Parcel {
	return Parcel{ID: id, Width: MustParseDimension(width), Depth: MustParseDimension(depth), Status: status}
}

func TestParcel_Area(t *testing.T) {
	cases := []struct {
		width, depth string
		area         int
	}{
		{"50'", "30'", 1500},
		{"50'", "34'", 1700},
		{`57'-6"`, "30'", 1725},
		{`53'-3"`, "30'", 1598},
		{`46'-9"`, `19'-6"`, 912},
		{`39'-4"`, "100'", 3933},
	}
	for _, tc := range cases {
		p := parcel(1, tc.width, tc.depth, ParcelStatusAvailable)
		if got := p.Area(); got != tc.area {
			t.Fatalf("%s × %s: expected %d, got %d", tc.width, tc.depth, tc.area, got)
		}
	}
}

func TestParcel_CaptionAndSelectable(t *testing.T) {
	p := parcel(9, `57'-6"`, "30'", ParcelStatusAvailable)
	if p.Caption() != `57'-6" × 30'` {
		t.Fatalf("unexpected caption %q", p.Caption())
	}
	if !p.Selectable() {
		t.Fatalf("available parcel must be selectable")
	}
	p.Status = ParcelStatusSold
	if p.Selectable() {
		t.Fatalf("sold parcel must not be selectable")
	}
}

func TestValidateCatalog(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ok := []Parcel{parcel(1, "50'", "30'", ParcelStatusAvailable), parcel(2, "50'", "30'", ParcelStatusReserved)}
		ok[0].SqFt = 1500
		if err := ValidateCatalog(ok); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		dup := []Parcel{parcel(1, "50'", "30'", ParcelStatusAvailable), parcel(1, "50'", "30'", ParcelStatusSold)}
		if err := ValidateCatalog(dup); !errors.Is(err, ErrDuplicateParcelID) {
			t.Fatalf("expected ErrDuplicateParcelID, got %v", err)
		}
	})

	t.Run("bad status and area", func(t *testing.T) {
		bad := parcel(3, "50'", "30'", ParcelStatus("pending"))
		bad.SqFt = 1400
		err := ValidateCatalog([]Parcel{bad, parcel(0, "1'", "1'", ParcelStatusSold)})
		if !errors.Is(err, ErrInvalidParcel) {
			t.Fatalf("expected ErrInvalidParcel, got %v", err)
		}
	})

	for name, p := range map[string]Parcel{
		"zero width":     parcel(4, "0'", "30'", ParcelStatusAvailable),
		"negative depth": {ID: 5, Width: MustParseDimension("50'"), Depth: DimensionFromInches(-12), Status: ParcelStatusAvailable},
		"missing sides":  {ID: 6, Status: ParcelStatusAvailable},
	} {
		t.Run(name, func(t *testing.T) {
			if err := ValidateCatalog([]Parcel{p}); !errors.Is(err, ErrInvalidParcel) {
				t.Fatalf("expected ErrInvalidParcel, got %v", err)
			}
		})
	}
}

func TestApplyStatusOverrides(t *testing.T) {
	in := []Parcel{
		parcel(1, "50'", "34'", ParcelStatusAvailable),
		parcel(2, "50'", "30'", ParcelStatusAvailable),
		parcel(3, "50'", "30'", ParcelStatusReserved),
		parcel(7, "50'", "30'", ParcelStatusSold),
		parcel(8, "50'", "30'", ParcelStatusSold),
	}

	once := ApplyStatusOverrides(in, DefaultStatusOverrides)
	twice := ApplyStatusOverrides(once, DefaultStatusOverrides)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("overrides are not idempotent: %+v vs %+v", once, twice)
	}

	want := map[int]ParcelStatus{1: ParcelStatusSold, 2: ParcelStatusSold, 3: ParcelStatusReserved, 7: ParcelStatusAvailable, 8: ParcelStatusAvailable}
	for i, p := range once {
		if p.Status != want[p.ID] {
			t.Fatalf("parcel %d: expected %s, got %s", p.ID, want[p.ID], p.Status)
		}
		if p.ID != in[i].ID {
			t.Fatalf("order not preserved at %d", i)
		}
	}
	if in[0].Status != ParcelStatusAvailable {
		t.Fatalf("input must not be mutated")
	}
	if ApplyStatusOverrides(nil, DefaultStatusOverrides) != nil {
		t.Fatalf("nil catalog must stay nil")
	}
}

func TestParseStatusOverrides(t *testing.T) {
	got, err := ParseStatusOverrides(" 1:sold, 2:SOLD,7:available ,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []StatusOverride{{1, ParcelStatusSold}, {2, ParcelStatusSold}, {7, ParcelStatusAvailable}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if got, err := ParseStatusOverrides(""); err != nil || got != nil {
		t.Fatalf("expected no overrides, got %+v %v", got, err)
	}
	for _, in := range []string{"1", "x:sold", "0:sold", "3:gone"} {
		if _, err := ParseStatusOverrides(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
