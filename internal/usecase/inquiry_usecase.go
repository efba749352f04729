package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInquiryName  = errors.New("invalid name")
	ErrInvalidInquiryPhone = errors.New("invalid phone")
	ErrInvalidInquiryEmail = errors.New("invalid email")
	ErrParcelSold          = errors.New("parcel already sold")
	ErrPersistenceFailed   = errors.New("inquiry persistence failed")
	ErrNotificationFailed  = errors.New("inquiry notification failed")
)

// PersistencePolicy decides whether a failed database write aborts a submission.
type PersistencePolicy string

const (
	// PersistenceResilient logs the failure and still sends the notification.
	PersistenceResilient PersistencePolicy = "resilient"
	// PersistenceStrict aborts with ErrPersistenceFailed.
	PersistenceStrict PersistencePolicy = "strict"
)

// SuccessPolicy decides which step outcomes make a submission successful.
type SuccessPolicy string

const (
	// SuccessOnNotification succeeds only when the notification went out.
	SuccessOnNotification SuccessPolicy = "notification"
	// SuccessOnEither succeeds when the lead was stored or notified.
	SuccessOnEither SuccessPolicy = "either"
)

// SubmissionPolicy configures InquiryUseCase.Submit.
type SubmissionPolicy struct {
	Persistence PersistencePolicy
	Success     SuccessPolicy
	// MaxAttempts bounds notification attempts; values below 1 mean 1.
	MaxAttempts int
	RetryDelay  time.Duration
	// CloseAfter is how long the dialog stays open after a success.
	CloseAfter time.Duration
}

func DefaultSubmissionPolicy() SubmissionPolicy {
	return SubmissionPolicy{
		Persistence: PersistenceResilient,
		Success:     SuccessOnNotification,
		MaxAttempts: 1,
		RetryDelay:  time.Second,
		CloseAfter:  2 * time.Second,
	}
}

// SubmissionResult reports what happened to one inquiry.
type SubmissionResult struct {
	InquiryID  string
	Persisted  bool
	Notified   bool
	CloseAfter time.Duration
}

// IInquiryUseCase accepts leads from the contact and plot inquiry forms.
//
// Steps run in order: validate, persist, notify. There is no idempotency
// key; every call stores a new row.
type IInquiryUseCase interface {
	Submit(ctx context.Context, in entities.Inquiry) (SubmissionResult, error)
}

type InquiryUseCase struct {
	repo     interfaces.IInquiryRepository
	notifier interfaces.INotifier
	catalog  ICatalogUseCase
	policy   SubmissionPolicy
	sleep    func(ctx context.Context, d time.Duration) error
	now      func() time.Time
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository, notifier interfaces.INotifier, catalog ICatalogUseCase, policy SubmissionPolicy) *InquiryUseCase {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &InquiryUseCase{
		repo:     repo,
		notifier: notifier,
		catalog:  catalog,
		policy:   policy,
		sleep:    sleepContext,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *InquiryUseCase) Submit(ctx context.Context, in entities.Inquiry) (SubmissionResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	log.Printf("[inquiry][usecase] submit start plot=%q", in.PlotNumber())

	if in.Name == "" {
		return SubmissionResult{}, ErrInvalidInquiryName
	}
	if in.Phone == "" {
		return SubmissionResult{}, ErrInvalidInquiryPhone
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return SubmissionResult{}, ErrInvalidInquiryEmail
	}
	if in.ParcelID != nil && u.catalog != nil {
		p, err := u.catalog.GetParcel(ctx, *in.ParcelID)
		if err != nil {
			log.Printf("[inquiry][usecase] parcel lookup failed parcel_id=%d err=%v", *in.ParcelID, err)
			return SubmissionResult{}, err
		}
		if p.IsSold() {
			return SubmissionResult{}, ErrParcelSold
		}
	}

	in.ID = uuid.NewString()
	in.CreatedAt = u.now()
	res := SubmissionResult{InquiryID: in.ID}

	if _, err := u.repo.Create(ctx, in); err != nil {
		log.Printf("[inquiry][usecase] persist failed inquiry_id=%s policy=%s err=%v", in.ID, u.policy.Persistence, err)
		if u.policy.Persistence == PersistenceStrict {
			return res, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}
	} else {
		res.Persisted = true
	}

	notifyErr := u.notify(ctx, entities.NotificationFromInquiry(in))
	res.Notified = notifyErr == nil

	ok := res.Notified
	if u.policy.Success == SuccessOnEither {
		ok = res.Notified || res.Persisted
	}
	if !ok {
		log.Printf("[inquiry][usecase] submit failed inquiry_id=%s persisted=%t err=%v", in.ID, res.Persisted, notifyErr)
		return res, fmt.Errorf("%w: %v", ErrNotificationFailed, notifyErr)
	}

	res.CloseAfter = u.policy.CloseAfter
	log.Printf("[inquiry][usecase] submit success inquiry_id=%s persisted=%t notified=%t", in.ID, res.Persisted, res.Notified)
	return res, nil
}

// notify calls the notifier at most MaxAttempts times. Only the notification
// is retried; the lead is already stored.
func (u *InquiryUseCase) notify(ctx context.Context, n entities.Notification) error {
	if u.notifier == nil {
		return errors.New("notifier not configured")
	}
	var err error
	for attempt := 1; attempt <= u.policy.MaxAttempts; attempt++ {
		if err = u.notifier.Notify(ctx, n); err == nil {
			return nil
		}
		log.Printf("[inquiry][usecase] notify failed inquiry_id=%s attempt=%d/%d err=%v", n.InquiryID, attempt, u.policy.MaxAttempts, err)
		if attempt < u.policy.MaxAttempts {
			if sErr := u.sleep(ctx, u.policy.RetryDelay); sErr != nil {
				return err
			}
		}
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
