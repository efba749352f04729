package selection

import (
	"testing"

	"plotsite/internal/domain/entities"
)

var (
	available = entities.Parcel{ID: 9, Status: entities.ParcelStatusAvailable}
	other     = entities.Parcel{ID: 10, Status: entities.ParcelStatusReserved}
	sold      = entities.Parcel{ID: 1, Status: entities.ParcelStatusSold}
)

func selected(t *testing.T, s State) int {
	t.Helper()
	id, ok := s.Selected()
	if !ok {
		t.Fatalf("expected a selection")
	}
	return id
}

func TestController_ToggleLaw(t *testing.T) {
	c := DefaultController()
	s := c.SelectParcel(State{}, available)
	if selected(t, s) != 9 {
		t.Fatalf("expected parcel 9 selected")
	}
	s = c.SelectParcel(s, available)
	if _, ok := s.Selected(); ok {
		t.Fatalf("second select must deselect, got %v", *s.SelectedParcelID)
	}
}

func TestController_SelectAnotherReplaces(t *testing.T) {
	for _, b := range []Behavior{BehaviorToggle, BehaviorReplace} {
		c := Controller{Behavior: b, GuardSold: true}
		s := c.SelectParcel(c.SelectParcel(State{}, available), other)
		if selected(t, s) != 10 {
			t.Fatalf("%s: expected parcel 10 selected", b)
		}
	}
}

func TestController_Replace(t *testing.T) {
	c := Controller{Behavior: BehaviorReplace, GuardSold: true}
	s := c.SelectParcel(c.SelectParcel(State{}, available), available)
	if selected(t, s) != 9 {
		t.Fatalf("replace must keep the parcel selected")
	}
}

func TestController_SoldGuard(t *testing.T) {
	t.Run("guarded", func(t *testing.T) {
		c := DefaultController()
		before := c.SelectParcel(State{}, available)
		after := c.SelectParcel(before, sold)
		if selected(t, after) != 9 {
			t.Fatalf("sold parcel must not change the selection")
		}
		if _, ok := c.SelectParcel(State{}, sold).Selected(); ok {
			t.Fatalf("sold parcel must not be selectable from empty state")
		}
	})

	t.Run("informational", func(t *testing.T) {
		c := Controller{Behavior: BehaviorToggle}
		s := c.SelectParcel(State{}, sold)
		if selected(t, s) != 1 {
			t.Fatalf("unguarded controller may select a sold parcel")
		}
		if c.CanInquire(s, sold) {
			t.Fatalf("no inquiry may be offered for a sold parcel")
		}
	})
}

func TestController_InquiryIndependentOfSelection(t *testing.T) {
	c := DefaultController()
	s := c.OpenInquiry(c.SelectParcel(State{}, available))
	if !s.InquiryOpen || selected(t, s) != 9 {
		t.Fatalf("open must keep selection: %+v", s)
	}
	if !c.CanInquire(s, available) {
		t.Fatalf("expected inquiry on the selected available parcel")
	}

	s = c.CloseInquiry(s)
	if s.InquiryOpen || selected(t, s) != 9 {
		t.Fatalf("close must not clear selection: %+v", s)
	}

	s = c.ClearSelection(c.OpenInquiry(s))
	if !s.InquiryOpen {
		t.Fatalf("clearing the selection must not close the dialog")
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestController_DoesNotAliasState(t *testing.T) {
	c := DefaultController()
	a := c.SelectParcel(State{}, available)
	b := c.SelectParcel(a, other)
	if selected(t, a) != 9 || selected(t, b) != 10 {
		t.Fatalf("transitions must not mutate earlier states")
	}
}

func TestParseBehavior(t *testing.T) {
	cases := map[string]Behavior{"": BehaviorToggle, "Toggle": BehaviorToggle, " replace ": BehaviorReplace}
	for in, want := range cases {
		got, err := ParseBehavior(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseBehavior("sticky"); err == nil {
		t.Fatalf("expected error for unknown behavior")
	}
}
