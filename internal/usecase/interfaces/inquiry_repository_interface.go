package interfaces

import (
	"context"
	"plotsite/internal/domain/entities"
)

// IInquiryRepository abstracts the append-only inquiries table.
//
// The site only needs to insert one row per submission; there are no reads,
// updates or deletes.

type IInquiryRepository interface {
	Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
}
