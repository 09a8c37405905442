package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AccountType string

const (
	AccountBank    AccountType = "BANK"
	AccountEWallet AccountType = "E-WALLET"
)

func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(strings.ToUpper(strings.TrimSpace(s))); t {
	case AccountBank, AccountEWallet:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
	}
}

//go:generate mockgen -destination ../service/accounts/mocks/accounts_repo.go . PaymentAccountsRepository
type PaymentAccountsRepository interface {
	// Upsert creates or replaces the single account of the user.
	Upsert(ctx context.Context, email string, a *PaymentAccount) (*PaymentAccount, error)
	GetAccountByEmail(ctx context.Context, email string) (*PaymentAccount, error)
}

type PaymentAccount struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          AccountType
	ProviderName  string
	AccountNumber string
	AccountName   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a *PaymentAccount) Destination() Destination {
	return Destination{
		BankName:      a.ProviderName,
		AccountNumber: a.AccountNumber,
		AccountName:   a.AccountName,
	}
}
