package notifications

import (
	"context"
	"log"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"
)

// LogNotifier only logs the notification. It is used when NOTIFIER_MOCK is
// set, for local runs without provider credentials.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Notify(_ context.Context, msg entities.Notification) error {
	log.Printf("[notify][mock] inquiry_id=%s subject=%q plot=%q", msg.InquiryID, msg.Subject, msg.PlotNumber)
	return nil
}
