package interfaces

import (
	"context"
	"plotsite/internal/domain/selection"
)

// ISelectionStore keeps visitor sessions.
//
// Get and Update return a zero Session (empty ID) and a nil error when the
// session does not exist. Update applies fn atomically.
type ISelectionStore interface {
	Create(ctx context.Context, s selection.Session) (selection.Session, error)
	Get(ctx context.Context, id string) (selection.Session, error)
	Update(ctx context.Context, id string, fn func(selection.State) selection.State) (selection.Session, error)
}
