package repository

import (
	"context"
	"errors"
	"testing"

	"plotsite/internal/domain/entities"
)

func TestParcelStaticRepository_EmbeddedCatalog(t *testing.T) {
	repo, err := NewParcelStaticRepository()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parcels, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parcels) != 25 {
		t.Fatalf("expected 25 parcels, got %d", len(parcels))
	}
	for i, p := range parcels {
		if p.ID != i+1 {
			t.Fatalf("expected ascending ids, got %d at %d", p.ID, i)
		}
	}
	if err := entities.ValidateCatalog(parcels); err != nil {
		t.Fatalf("embedded catalog invalid: %v", err)
	}

	nine := parcels[8]
	if nine.Width.String() != `57'-6"` || nine.Depth.String() != "30'" || nine.Area() != 1725 {
		t.Fatalf("unexpected parcel 9: %+v", nine)
	}
}

func TestParcelStaticRepository_ListAllReturnsCopy(t *testing.T) {
	repo, err := NewParcelStaticRepository()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := repo.ListAll(context.Background())
	first[0].Status = entities.ParcelStatusReserved

	second, _ := repo.ListAll(context.Background())
	if second[0].Status != entities.ParcelStatusSold {
		t.Fatalf("callers must not mutate the repository, got %s", second[0].Status)
	}
}

func TestParcelStaticRepository_FromYAML(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		repo, err := NewParcelStaticRepositoryFromYAML([]byte(`
parcels:
  - id: 3
    width: "50'"
    depth: "30'"
    status: available
`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parcels, _ := repo.ListAll(context.Background())
		if len(parcels) != 1 || parcels[0].Area() != 1500 {
			t.Fatalf("unexpected parcels: %+v", parcels)
		}
	})

	t.Run("bad dimension", func(t *testing.T) {
		_, err := NewParcelStaticRepositoryFromYAML([]byte("parcels:\n  - id: 1\n    width: wide\n    depth: \"30'\"\n"))
		if !errors.Is(err, entities.ErrInvalidDimension) {
			t.Fatalf("expected ErrInvalidDimension, got %v", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		if _, err := NewParcelStaticRepositoryFromYAML([]byte("parcels: [")); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}
