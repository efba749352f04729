package repository

import (
	"context"
	_ "embed"
	"fmt"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Parcels []parcelRecord `yaml:"parcels"`
}

type parcelRecord struct {
	ID     int    `yaml:"id"`
	Width  string `yaml:"width"`
	Depth  string `yaml:"depth"`
	SqFt   int    `yaml:"sq_ft"`
	Status string `yaml:"status"`
}

// ParcelStaticRepository serves the catalog from a YAML document, by
// default the one compiled into the binary.
type ParcelStaticRepository struct {
	parcels []entities.Parcel
}

var _ interfaces.IParcelRepository = (*ParcelStaticRepository)(nil)

func NewParcelStaticRepository() (*ParcelStaticRepository, error) {
	return NewParcelStaticRepositoryFromYAML(defaultCatalogYAML)
}

func NewParcelStaticRepositoryFromYAML(doc []byte) (*ParcelStaticRepository, error) {
	var f catalogFile
	if err := yaml.Unmarshal(doc, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	parcels := make([]entities.Parcel, 0, len(f.Parcels))
	for _, rec := range f.Parcels {
		p, err := fromParcelRecord(rec)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}
	return &ParcelStaticRepository{parcels: parcels}, nil
}

// ListAll returns a copy in document order.
func (r *ParcelStaticRepository) ListAll(_ context.Context) ([]entities.Parcel, error) {
	out := make([]entities.Parcel, len(r.parcels))
	copy(out, r.parcels)
	return out, nil
}

func fromParcelRecord(rec parcelRecord) (entities.Parcel, error) {
	width, err := entities.ParseDimension(rec.Width)
	if err != nil {
		return entities.Parcel{}, fmt.Errorf("parcel %d width: %w", rec.ID, err)
	}
	depth, err := entities.ParseDimension(rec.Depth)
	if err != nil {
		return entities.Parcel{}, fmt.Errorf("parcel %d depth: %w", rec.ID, err)
	}
	return entities.Parcel{
		ID:     rec.ID,
		Width:  width,
		Depth:  depth,
		SqFt:   rec.SqFt,
		Status: entities.ParcelStatus(rec.Status),
	}, nil
}
