package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/commission/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ model.PaymentAccountsRepository = (*AccountsRepo)(nil)

const accountColumns = `
	pa.id, pa.user_id, pa.type, pa.provider_name, pa.account_number,
	pa.account_name, pa.created_at, pa.updated_at
`

type AccountsRepo struct {
	baseRepo
}

// Upsert relies on the unique user_id constraint, so concurrent calls for
// the same user converge on one row.
func (r *AccountsRepo) Upsert(
	ctx context.Context,
	email string,
	a *model.PaymentAccount,
) (*model.PaymentAccount, error) {
	q := `
		INSERT INTO payment_accounts AS pa (
			id, user_id, type, provider_name, account_number, account_name
		)
		SELECT @id::uuid, u.id, @type, @providerName, @accountNumber, @accountName
		FROM users u
		WHERE lower(u.email) = lower(@email)
		ON CONFLICT (user_id) DO UPDATE
		SET type = EXCLUDED.type,
			provider_name = EXCLUDED.provider_name,
			account_number = EXCLUDED.account_number,
			account_name = EXCLUDED.account_name,
			updated_at = NOW()
		RETURNING ` + accountColumns

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	args := pgx.NamedArgs{
		"id":            id,
		"type":          string(a.Type),
		"providerName":  a.ProviderName,
		"accountNumber": a.AccountNumber,
		"accountName":   a.AccountName,
		"email":         model.NormalizeEmail(email),
	}

	saved, err := scanAccount(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to upsert payment account: %w", err)
	}

	return saved, nil
}

func (r *AccountsRepo) GetAccountByEmail(
	ctx context.Context,
	email string,
) (*model.PaymentAccount, error) {
	q := `
		SELECT ` + accountColumns + `
		FROM payment_accounts pa
		JOIN users u ON u.id = pa.user_id
		WHERE lower(u.email) = lower($1)
	`

	a, err := scanAccount(r.db.QueryRow(ctx, q, model.NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get payment account: %w", err)
	}

	return a, nil
}

func scanAccount(row pgx.Row) (*model.PaymentAccount, error) {
	var (
		a       model.PaymentAccount
		accType string
	)
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&accType,
		&a.ProviderName,
		&a.AccountNumber,
		&a.AccountName,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Type = model.AccountType(accType)

	return &a, nil
}
