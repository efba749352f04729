package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"
)

var (
	ErrParcelNotFound  = errors.New("parcel not found")
	ErrInvalidParcelID = errors.New("invalid parcel id")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

// CatalogSummary counts parcels per status.
type CatalogSummary struct {
	Total     int
	Available int
	Reserved  int
	Sold      int
}

// ICatalogUseCase serves the plot catalog.
//
// Every read goes through the same pipeline: load, order by plot number,
// validate, apply status overrides. The result may be served from a
// short-lived snapshot.
type ICatalogUseCase interface {
	GetAllParcels(ctx context.Context) ([]entities.Parcel, error)
	GetParcel(ctx context.Context, id int) (entities.Parcel, error)
	Summary(ctx context.Context) (CatalogSummary, error)
}

type CatalogUseCase struct {
	repo      interfaces.IParcelRepository
	overrides []entities.StatusOverride

	cacheTTL time.Duration
	now      func() time.Time

	mu       sync.Mutex
	snapshot []entities.Parcel
	loadedAt time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IParcelRepository, overrides []entities.StatusOverride) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, overrides: overrides, now: time.Now}
}

// WithCacheTTL keeps each successfully loaded catalog for ttl. Zero turns
// the snapshot off and every read hits the repository.
func (u *CatalogUseCase) WithCacheTTL(ttl time.Duration) *CatalogUseCase {
	u.cacheTTL = ttl
	return u
}

func (u *CatalogUseCase) GetAllParcels(ctx context.Context) ([]entities.Parcel, error) {
	if u.cacheTTL <= 0 {
		return u.load(ctx)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	now := u.now()
	if u.snapshot == nil || now.Sub(u.loadedAt) >= u.cacheTTL {
		parcels, err := u.load(ctx)
		if err != nil {
			return nil, err
		}
		u.snapshot, u.loadedAt = parcels, now
	}
	out := make([]entities.Parcel, len(u.snapshot))
	copy(out, u.snapshot)
	return out, nil
}

func (u *CatalogUseCase) load(ctx context.Context) ([]entities.Parcel, error) {
	parcels, err := u.repo.ListAll(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] list failed err=%v", err)
		return nil, err
	}

	sorted := make([]entities.Parcel, len(parcels))
	copy(sorted, parcels)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	if err := entities.ValidateCatalog(sorted); err != nil {
		log.Printf("[catalog][usecase] catalog rejected err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return entities.ApplyStatusOverrides(sorted, u.overrides), nil
}

func (u *CatalogUseCase) GetParcel(ctx context.Context, id int) (entities.Parcel, error) {
	if id <= 0 {
		return entities.Parcel{}, ErrInvalidParcelID
	}
	parcels, err := u.GetAllParcels(ctx)
	if err != nil {
		return entities.Parcel{}, err
	}
	p, ok := entities.FindParcel(parcels, id)
	if !ok {
		return entities.Parcel{}, ErrParcelNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) Summary(ctx context.Context) (CatalogSummary, error) {
	parcels, err := u.GetAllParcels(ctx)
	if err != nil {
		return CatalogSummary{}, err
	}
	s := CatalogSummary{Total: len(parcels)}
	for _, p := range parcels {
		switch p.Status {
		case entities.ParcelStatusAvailable:
			s.Available++
		case entities.ParcelStatusReserved:
			s.Reserved++
		case entities.ParcelStatusSold:
			s.Sold++
		}
	}
	return s, nil
}
