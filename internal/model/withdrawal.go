package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalProcessed WithdrawalStatus = "processed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

func (s WithdrawalStatus) String() string {
	return string(s)
}

//go:generate mockgen -destination ../service/withdrawals/mocks/withdrawals_repo.go . WithdrawalsRepository
type WithdrawalsRepository interface {
	// CreateWithdrawal reads the user's payments, applies sel and settles the
	// eligible ones into a new pending withdrawal, all in one transaction.
	CreateWithdrawal(
		ctx context.Context,
		email string,
		dest Destination,
		sel Selector,
	) (*Withdrawal, error)
	// CancelWithdrawal deletes a pending withdrawal and releases its
	// payments, returning the withdrawal as it was before deletion. An empty
	// ownerEmail skips the ownership check.
	CancelWithdrawal(
		ctx context.Context,
		id int64,
		ownerEmail string,
	) (*Withdrawal, error)
	GetWithdrawalsByEmail(ctx context.Context, email string) ([]Withdrawal, error)
}

// Destination is where a withdrawal is paid out to.
type Destination struct {
	BankName      string
	AccountNumber string
	AccountName   string
}

func (d Destination) Normalize() Destination {
	return Destination{
		BankName:      strings.TrimSpace(d.BankName),
		AccountNumber: strings.TrimSpace(d.AccountNumber),
		AccountName:   strings.TrimSpace(d.AccountName),
	}
}

func (d Destination) IsZero() bool {
	return d.Normalize() == Destination{}
}

func (d Destination) Validate() error {
	d = d.Normalize()
	switch {
	case d.BankName == "":
		return fmt.Errorf("%w: bank name is empty", ErrInvalidDestination)
	case d.AccountNumber == "":
		return fmt.Errorf("%w: account number is empty", ErrInvalidDestination)
	case d.AccountName == "":
		return fmt.Errorf("%w: account name is empty", ErrInvalidDestination)
	}
	return nil
}

type Withdrawal struct {
	ID          int64
	UserEmail   string
	Amount      decimal.Decimal
	Destination Destination
	Status      WithdrawalStatus
	CreatedAt   time.Time
	Payments    []Payment
}

func (w *Withdrawal) Cancellable() bool {
	return w.Status == WithdrawalPending
}

func (w *Withdrawal) PaymentIDs() []int64 {
	ids := make([]int64, 0, len(w.Payments))
	for _, p := range w.Payments {
		ids = append(ids, p.ID)
	}
	return ids
}
