package response

import "plotsite/internal/usecase"

const InquirySuccessMessage = "Thank you! We'll contact you soon."

type InquiryResponse struct {
	InquiryID    string `json:"inquiry_id"`
	Persisted    bool   `json:"persisted"`
	Notified     bool   `json:"notified"`
	CloseAfterMS int64  `json:"close_after_ms"`
	Message      string `json:"message"`
}

func FromSubmissionResult(r usecase.SubmissionResult) InquiryResponse {
	return InquiryResponse{
		InquiryID:    r.InquiryID,
		Persisted:    r.Persisted,
		Notified:     r.Notified,
		CloseAfterMS: r.CloseAfter.Milliseconds(),
		Message:      InquirySuccessMessage,
	}
}
