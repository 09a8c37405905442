package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/commission/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ model.PaymentsRepository = (*PaymentsRepo)(nil)

const paymentColumns = `
	id, order_id, referral_code, status, amount, created_at, withdrawal_id
`

type PaymentsRepo struct {
	baseRepo
}

func (r *PaymentsRepo) FirstSuccessfulPayment(
	ctx context.Context,
	referralCode string,
) (*model.Payment, error) {
	q := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE referral_code = $1 AND status = 'success'
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`

	p, err := scanPayment(r.db.QueryRow(ctx, q, referralCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get first payment: %w", err)
	}

	return &p, nil
}

func (r *PaymentsRepo) GetByReferralCode(
	ctx context.Context,
	referralCode string,
) ([]model.Payment, error) {
	return queryPayments(ctx, r.db, selectPaymentsByReferral, referralCode)
}

func (r *PaymentsRepo) GetRecentSuccessful(
	ctx context.Context,
	referralCode string,
	limit int,
) ([]model.Payment, error) {
	q := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE referral_code = $1 AND status = 'success'
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	return queryPayments(ctx, r.db, q, referralCode, limit)
}

const selectPaymentsByReferral = `
	SELECT ` + paymentColumns + `
	FROM payments
	WHERE referral_code = $1
	ORDER BY created_at ASC, id ASC
`

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryPayments(
	ctx context.Context,
	db querier,
	q string,
	args ...any,
) ([]model.Payment, error) {
	rows, err := db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("payments query error: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error reading values: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading values: %w", err)
	}

	return payments, nil
}

func scanPayment(row pgx.Row) (model.Payment, error) {
	var (
		p            model.Payment
		referralCode pgtype.Text
		status       string
	)
	if err := row.Scan(
		&p.ID,
		&p.OrderID,
		&referralCode,
		&status,
		&p.Amount,
		&p.CreatedAt,
		&p.WithdrawalID,
	); err != nil {
		return model.Payment{}, err
	}
	p.ReferralCode = referralCode.String
	p.Status = model.PaymentStatus(status)

	return p, nil
}
