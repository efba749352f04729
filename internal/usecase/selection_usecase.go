package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"plotsite/internal/domain/selection"
	"plotsite/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// ISelectionUseCase drives the per-visitor selection state.
//
// Session ids are uuids generated here. Each mutation is a pure
// selection.Controller transition applied atomically by the store.
type ISelectionUseCase interface {
	CreateSession(ctx context.Context) (selection.Session, error)
	Get(ctx context.Context, id string) (selection.Session, error)
	SelectParcel(ctx context.Context, id string, parcelID int) (selection.Session, error)
	ClearSelection(ctx context.Context, id string) (selection.Session, error)
	OpenInquiry(ctx context.Context, id string) (selection.Session, error)
	CloseInquiry(ctx context.Context, id string) (selection.Session, error)
	ScheduleAutoClose(id string, delay time.Duration)
}

type SelectionUseCase struct {
	store      interfaces.ISelectionStore
	catalog    ICatalogUseCase
	controller selection.Controller
	afterFunc  func(time.Duration, func())
	now        func() time.Time
}

var _ ISelectionUseCase = (*SelectionUseCase)(nil)

func NewSelectionUseCase(store interfaces.ISelectionStore, catalog ICatalogUseCase, controller selection.Controller) *SelectionUseCase {
	return &SelectionUseCase{
		store:      store,
		catalog:    catalog,
		controller: controller,
		afterFunc:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithAfterFunc replaces the timer used by ScheduleAutoClose.
func (u *SelectionUseCase) WithAfterFunc(f func(time.Duration, func())) *SelectionUseCase {
	u.afterFunc = f
	return u
}

func (u *SelectionUseCase) CreateSession(ctx context.Context) (selection.Session, error) {
	now := u.now()
	s := selection.Session{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	created, err := u.store.Create(ctx, s)
	if err != nil {
		log.Printf("[selection][usecase] create session failed err=%v", err)
		return selection.Session{}, err
	}
	return created, nil
}

func (u *SelectionUseCase) Get(ctx context.Context, id string) (selection.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return selection.Session{}, ErrInvalidSessionID
	}
	s, err := u.store.Get(ctx, id)
	if err != nil {
		return selection.Session{}, err
	}
	if s.ID == "" {
		return selection.Session{}, ErrSessionNotFound
	}
	return s, nil
}

// SelectParcel resolves parcelID against the catalog and applies the
// controller's select transition.
func (u *SelectionUseCase) SelectParcel(ctx context.Context, id string, parcelID int) (selection.Session, error) {
	p, err := u.catalog.GetParcel(ctx, parcelID)
	if err != nil {
		return selection.Session{}, err
	}
	s, err := u.update(ctx, id, func(st selection.State) selection.State {
		return u.controller.SelectParcel(st, p)
	})
	if err != nil {
		return selection.Session{}, err
	}
	if p.IsSold() && u.controller.GuardSold {
		log.Printf("[selection][usecase] sold parcel ignored session_id=%s parcel_id=%d", id, parcelID)
	}
	return s, nil
}

func (u *SelectionUseCase) ClearSelection(ctx context.Context, id string) (selection.Session, error) {
	return u.update(ctx, id, u.controller.ClearSelection)
}

func (u *SelectionUseCase) OpenInquiry(ctx context.Context, id string) (selection.Session, error) {
	return u.update(ctx, id, u.controller.OpenInquiry)
}

func (u *SelectionUseCase) CloseInquiry(ctx context.Context, id string) (selection.Session, error) {
	return u.update(ctx, id, u.controller.CloseInquiry)
}

// ScheduleAutoClose closes the inquiry dialog of session id after delay.
func (u *SelectionUseCase) ScheduleAutoClose(id string, delay time.Duration) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	u.afterFunc(delay, func() {
		if _, err := u.CloseInquiry(context.Background(), id); err != nil {
			log.Printf("[selection][usecase] auto-close failed session_id=%s err=%v", id, err)
		}
	})
}

func (u *SelectionUseCase) update(ctx context.Context, id string, fn func(selection.State) selection.State) (selection.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return selection.Session{}, ErrInvalidSessionID
	}
	s, err := u.store.Update(ctx, id, fn)
	if err != nil {
		log.Printf("[selection][usecase] update failed session_id=%s err=%v", id, err)
		return selection.Session{}, err
	}
	if s.ID == "" {
		return selection.Session{}, ErrSessionNotFound
	}
	return s, nil
}
