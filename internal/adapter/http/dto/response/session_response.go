package response

import (
	"time"

	"plotsite/internal/domain/selection"
)

type SessionResponse struct {
	ID               string    `json:"id"`
	SelectedParcelID *int      `json:"selected_parcel_id"`
	InquiryOpen      bool      `json:"inquiry_open"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromSession(s selection.Session) SessionResponse {
	return SessionResponse{
		ID:               s.ID,
		SelectedParcelID: s.State.SelectedParcelID,
		InquiryOpen:      s.State.InquiryOpen,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
