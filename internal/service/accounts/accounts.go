package accounts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fragpit/commission/internal/api/handlers"
	"github.com/fragpit/commission/internal/model"
)

var _ handlers.AccountsService = (*AccountsService)(nil)

type AccountsService struct {
	repo model.PaymentAccountsRepository
}

func NewAccountsService(repo model.PaymentAccountsRepository) *AccountsService {
	return &AccountsService{
		repo: repo,
	}
}

// SaveAccount replaces the user's payout account. Storage keeps exactly one
// account per user.
func (s *AccountsService) SaveAccount(
	ctx context.Context,
	email string,
	accountType string,
	dest model.Destination,
) (*model.PaymentAccount, error) {
	t, err := model.ParseAccountType(accountType)
	if err != nil {
		return nil, err
	}

	dest = dest.Normalize()
	if err := dest.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.Upsert(ctx, strings.TrimSpace(email), &model.PaymentAccount{
		Type:          t,
		ProviderName:  dest.BankName,
		AccountNumber: dest.AccountNumber,
		AccountName:   dest.AccountName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save payment account: %w", err)
	}

	slog.Info(
		"payment account saved",
		slog.String("email", email),
		slog.String("type", string(a.Type)),
	)

	return a, nil
}

func (s *AccountsService) GetAccount(
	ctx context.Context,
	email string,
) (*model.PaymentAccount, error) {
	return s.repo.GetAccountByEmail(ctx, email)
}
