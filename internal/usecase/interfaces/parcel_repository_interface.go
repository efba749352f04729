package interfaces

import (
	"context"
	"plotsite/internal/domain/entities"
)

// IParcelRepository is the read-only source of the plot catalog.
//
// Implementations return every parcel ordered by plot number. Status
// overrides and validation are applied by the catalog use case, not here.

type IParcelRepository interface {
	ListAll(ctx context.Context) ([]entities.Parcel, error)
}
