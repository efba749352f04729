// Package selection holds the visitor-facing selection state and the pure
// transitions applied to it on each click.
package selection

import (
	"fmt"
	"strings"

	"plotsite/internal/domain/entities"
)

// Behavior decides what selecting the already selected parcel does.
type Behavior string

const (
	// BehaviorToggle deselects the parcel on a second select.
	BehaviorToggle Behavior = "toggle"
	// BehaviorReplace always keeps the last selected parcel.
	BehaviorReplace Behavior = "replace"
)

func ParseBehavior(s string) (Behavior, error) {
	switch b := Behavior(strings.ToLower(strings.TrimSpace(s))); b {
	case BehaviorToggle, BehaviorReplace:
		return b, nil
	case "":
		return BehaviorToggle, nil
	}
	return "", fmt.Errorf("invalid selection behavior %q", s)
}

// State is what one visitor currently has on screen.
type State struct {
	SelectedParcelID *int `json:"selected_parcel_id"`
	InquiryOpen      bool `json:"inquiry_open"`
}

// Selected returns the selected parcel id, if any.
func (s State) Selected() (int, bool) {
	if s.SelectedParcelID == nil {
		return 0, false
	}
	return *s.SelectedParcelID, true
}

// Controller applies selection transitions. The zero value replaces without
// guarding sold parcels; use DefaultController for the site behavior.
type Controller struct {
	Behavior  Behavior
	GuardSold bool
}

func DefaultController() Controller {
	return Controller{Behavior: BehaviorToggle, GuardSold: true}
}

// SelectParcel selects p. With GuardSold a sold parcel leaves the state as is.
func (c Controller) SelectParcel(s State, p entities.Parcel) State {
	if c.GuardSold && p.IsSold() {
		return s
	}
	if cur, ok := s.Selected(); ok && cur == p.ID && c.Behavior == BehaviorToggle {
		s.SelectedParcelID = nil
		return s
	}
	id := p.ID
	s.SelectedParcelID = &id
	return s
}

func (c Controller) ClearSelection(s State) State {
	s.SelectedParcelID = nil
	return s
}

// OpenInquiry shows the inquiry dialog. Selection is untouched.
func (c Controller) OpenInquiry(s State) State {
	s.InquiryOpen = true
	return s
}

// CloseInquiry hides the inquiry dialog and keeps the selection.
func (c Controller) CloseInquiry(s State) State {
	s.InquiryOpen = false
	return s
}

// CanInquire reports whether the inquiry action is offered for p: it must be
// the selected parcel and not sold.
func (c Controller) CanInquire(s State, p entities.Parcel) bool {
	cur, ok := s.Selected()
	return ok && cur == p.ID && p.Selectable()
}
