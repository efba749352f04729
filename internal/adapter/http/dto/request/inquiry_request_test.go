package request

import "testing"

func TestInquiryRequest_ToInquiry(t *testing.T) {
	nine := 9
	r := InquiryRequest{Name: " Asha ", Phone: " 9876543210", Email: "a@x.com ", Message: "  ", ParcelID: &nine, SessionID: " s-1 "}

	in := r.ToInquiry()
	if in.Name != "Asha" || in.Phone != "9876543210" || in.Email != "a@x.com" || in.Message != "" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
	if in.ParcelID == nil || *in.ParcelID != 9 || in.PlotNumber() != "Plot #9" {
		t.Fatalf("unexpected parcel: %+v", in)
	}
	if in.ID != "" {
		t.Fatalf("ids are assigned by the use case, got %q", in.ID)
	}
	if got := r.ResolveSessionID(); got != "s-1" {
		t.Fatalf("expected s-1, got %q", got)
	}
}
