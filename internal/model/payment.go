package model

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
	PaymentExpired PaymentStatus = "expired"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Terminal reports whether the gateway will not change the status again.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentSuccess, PaymentFailed, PaymentExpired:
		return true
	default:
		return false
	}
}

//go:generate mockgen -destination ../service/balance/mocks/payments_repo.go . PaymentsRepository
type PaymentsRepository interface {
	// FirstSuccessfulPayment returns nil without error when the code has no
	// successful payment yet.
	FirstSuccessfulPayment(ctx context.Context, referralCode string) (*Payment, error)
	GetByReferralCode(ctx context.Context, referralCode string) ([]Payment, error)
	GetRecentSuccessful(
		ctx context.Context,
		referralCode string,
		limit int,
	) ([]Payment, error)
}

type Payment struct {
	ID           int64
	OrderID      string
	ReferralCode string
	Status       PaymentStatus
	Amount       decimal.Decimal
	CreatedAt    time.Time
	WithdrawalID *int64
}

func (p *Payment) Settled() bool {
	return p.WithdrawalID != nil
}

// Before orders payments by creation time, lower id first on equal times.
func (p *Payment) Before(o *Payment) bool {
	if p.CreatedAt.Equal(o.CreatedAt) {
		return p.ID < o.ID
	}
	return p.CreatedAt.Before(o.CreatedAt)
}

// FirstSuccess returns the earliest successful payment of the slice, or nil.
func FirstSuccess(payments []Payment) *Payment {
	var first *Payment
	for i := range payments {
		p := &payments[i]
		if p.Status != PaymentSuccess {
			continue
		}
		if first == nil || p.Before(first) {
			first = p
		}
	}
	return first
}

// SumAmounts adds amounts with exact decimal arithmetic.
func SumAmounts(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
