package request

import (
	"strings"

	"plotsite/internal/domain/entities"
)

// InquiryRequest is the contact form payload. Only name and phone are
// required; parcel_id ties the lead to a plot.
type InquiryRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	ParcelID  *int   `json:"parcel_id"`
	SessionID string `json:"session_id"`
}

func (r InquiryRequest) ToInquiry() entities.Inquiry {
	return entities.Inquiry{
		Name:     strings.TrimSpace(r.Name),
		Phone:    strings.TrimSpace(r.Phone),
		Email:    strings.TrimSpace(r.Email),
		Message:  strings.TrimSpace(r.Message),
		ParcelID: r.ParcelID,
	}
}

func (r InquiryRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}
