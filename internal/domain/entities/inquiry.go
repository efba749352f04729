package entities

import (
	"fmt"
	"time"
)

// Inquiry is a prospective buyer's contact submission.
//
// Storage model (DynamoDB "inquiries" table, append-only):
//   - PK: id (one fresh uuid per submission; duplicates are deduplicated by sales staff)
//   - plot_number is the display form "Plot #9", empty when no parcel was chosen
type Inquiry struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Message   string
	ParcelID  *int
	CreatedAt time.Time
}

// PlotNumber renders the parcel reference used in emails and stored rows.
func (i Inquiry) PlotNumber() string {
	if i.ParcelID == nil {
		return ""
	}
	return fmt.Sprintf("Plot #%d", *i.ParcelID)
}

// Subject is the notification subject line.
func (i Inquiry) Subject() string {
	if i.ParcelID == nil {
		return fmt.Sprintf("New Inquiry from %s", i.Name)
	}
	return fmt.Sprintf("New Inquiry from %s for Plot #%d", i.Name, *i.ParcelID)
}

// Notification is the payload handed to the email collaborator.
type Notification struct {
	InquiryID  string `json:"inquiry_id"`
	Subject    string `json:"subject"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	PlotNumber string `json:"plotNumber"`
}

func NotificationFromInquiry(i Inquiry) Notification {
	return Notification{
		InquiryID:  i.ID,
		Subject:    i.Subject(),
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Message:    i.Message,
		PlotNumber: i.PlotNumber(),
	}
}
