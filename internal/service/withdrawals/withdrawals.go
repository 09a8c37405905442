package withdrawals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fragpit/commission/internal/api/handlers"
	"github.com/fragpit/commission/internal/model"
)

var _ handlers.WithdrawalsService = (*WithdrawalsService)(nil)

const publishTimeout = 5 * time.Second

type WithdrawalsService struct {
	repo      model.WithdrawalsRepository
	accounts  model.PaymentAccountsRepository
	publisher model.EventPublisher
	selector  model.Selector
	now       func() time.Time
}

// NewWithdrawalsService accepts a nil publisher, in which case no events
// are sent.
func NewWithdrawalsService(
	repo model.WithdrawalsRepository,
	accounts model.PaymentAccountsRepository,
	publisher model.EventPublisher,
	loc *time.Location,
) *WithdrawalsService {
	return &WithdrawalsService{
		repo:      repo,
		accounts:  accounts,
		publisher: publisher,
		selector:  model.NewSelector(loc),
		now:       time.Now,
	}
}

// CreateWithdrawal settles the whole withdrawable balance of the user. A zero
// destination falls back to the payment account on file.
func (s *WithdrawalsService) CreateWithdrawal(
	ctx context.Context,
	email string,
	dest model.Destination,
) (*model.Withdrawal, error) {
	if dest.IsZero() {
		account, err := s.accounts.GetAccountByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, model.ErrAccountNotFound) {
				return nil, fmt.Errorf(
					"%w: no destination given and no payment account on file",
					model.ErrInvalidDestination,
				)
			}
			return nil, fmt.Errorf("failed to get payment account: %w", err)
		}
		dest = account.Destination()
	}
	if err := dest.Validate(); err != nil {
		return nil, err
	}

	w, err := s.repo.CreateWithdrawal(ctx, email, dest, s.selector)
	if err != nil {
		return nil, err
	}

	slog.Info(
		"withdrawal created",
		slog.Int64("id", w.ID),
		slog.String("email", w.UserEmail),
		slog.String("amount", w.Amount.String()),
		slog.Int("payments", len(w.Payments)),
	)
	s.publish(ctx, model.EventWithdrawalCreated, w)

	return w, nil
}

// CancelWithdrawal is the back-office path and skips the ownership check.
func (s *WithdrawalsService) CancelWithdrawal(
	ctx context.Context,
	id int64,
) error {
	return s.cancel(ctx, id, "")
}

func (s *WithdrawalsService) CancelUserWithdrawal(
	ctx context.Context,
	email string,
	id int64,
) error {
	return s.cancel(ctx, id, email)
}

func (s *WithdrawalsService) GetWithdrawalsByUser(
	ctx context.Context,
	email string,
) ([]model.Withdrawal, error) {
	return s.repo.GetWithdrawalsByEmail(ctx, email)
}

func (s *WithdrawalsService) cancel(
	ctx context.Context,
	id int64,
	ownerEmail string,
) error {
	w, err := s.repo.CancelWithdrawal(ctx, id, ownerEmail)
	if err != nil {
		return err
	}

	slog.Info(
		"withdrawal cancelled",
		slog.Int64("id", w.ID),
		slog.String("email", w.UserEmail),
		slog.Int("released", len(w.Payments)),
	)
	s.publish(ctx, model.EventWithdrawalCancelled, w)

	return nil
}

// publish runs after commit; a failed publish is logged and never undoes
// the withdrawal.
func (s *WithdrawalsService) publish(
	ctx context.Context,
	eventType model.EventType,
	w *model.Withdrawal,
) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	e := model.WithdrawalEvent{
		Type:         eventType,
		WithdrawalID: w.ID,
		UserEmail:    w.UserEmail,
		Amount:       w.Amount,
		PaymentIDs:   w.PaymentIDs(),
		OccurredAt:   s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Error(
			"failed to publish withdrawal event",
			slog.String("type", string(eventType)),
			slog.Int64("id", w.ID),
			slog.Any("error", err),
		)
	}
}
