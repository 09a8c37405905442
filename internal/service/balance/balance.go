package balance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fragpit/commission/internal/api/handlers"
	"github.com/fragpit/commission/internal/model"
)

var _ handlers.BalanceService = (*BalanceService)(nil)

const RecentPaymentsLimit = 10

type BalanceService struct {
	users    model.UsersRepository
	payments model.PaymentsRepository
	loc      *time.Location
}

func NewBalanceService(
	users model.UsersRepository,
	payments model.PaymentsRepository,
	loc *time.Location,
) *BalanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &BalanceService{
		users:    users,
		payments: payments,
		loc:      loc,
	}
}

// ComputeWindow returns nil without error when the code has no successful
// payment yet.
func (b *BalanceService) ComputeWindow(
	ctx context.Context,
	referralCode string,
) (*model.Window, error) {
	if strings.TrimSpace(referralCode) == "" {
		return nil, model.ErrEmptyReferralCode
	}

	first, err := b.payments.FirstSuccessfulPayment(ctx, referralCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get first successful payment: %w", err)
	}

	return model.WindowFor(first, b.loc), nil
}

func (b *BalanceService) SelectEligible(
	ctx context.Context,
	referralCode string,
) (model.Selection, error) {
	w, err := b.ComputeWindow(ctx, referralCode)
	if err != nil {
		return model.Selection{}, err
	}

	payments, err := b.payments.GetByReferralCode(ctx, referralCode)
	if err != nil {
		return model.Selection{}, fmt.Errorf("failed to get payments: %w", err)
	}

	return model.SelectInWindow(referralCode, w, payments), nil
}

// GetUserBalance reports a zero balance for users without a referral code.
func (b *BalanceService) GetUserBalance(
	ctx context.Context,
	email string,
) (model.Selection, error) {
	u, err := b.users.GetByEmail(ctx, email)
	if err != nil {
		return model.Selection{}, err
	}
	if !u.HasReferralCode() {
		slog.Debug("user has no referral code", slog.String("email", u.Email))
		return model.SelectInWindow("", nil, nil), nil
	}

	return b.SelectEligible(ctx, u.ReferralCode)
}

func (b *BalanceService) GetRecentPayments(
	ctx context.Context,
	email string,
) ([]model.Payment, error) {
	u, err := b.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !u.HasReferralCode() {
		return nil, nil
	}

	payments, err := b.payments.GetRecentSuccessful(
		ctx,
		u.ReferralCode,
		RecentPaymentsLimit,
	)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("failed to get recent payments: %w", err)
	}

	return payments, nil
}
