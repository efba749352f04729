package interfaces

import (
	"context"
	"plotsite/internal/domain/entities"
)

// INotifier abstracts the email-notification provider (a form relay such as
// Web3Forms, or a transactional email API such as Resend).
//
// A nil error means the provider reported success.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
