package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/commission/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ model.WithdrawalsRepository = (*WithdrawalsRepo)(nil)

const withdrawalColumns = `
	id, user_email, amount, bank_name, account_number, account_name,
	status, created_at
`

type WithdrawalsRepo struct {
	baseRepo
}

// CreateWithdrawal settles the user's eligible payments into a new pending
// withdrawal. The user row is locked without waiting, so a second settlement
// for the same user fails fast with model.ErrConflict instead of reading the
// same unsettled set.
func (r *WithdrawalsRepo) CreateWithdrawal(
	ctx context.Context,
	email string,
	dest model.Destination,
	sel model.Selector,
) (*model.Withdrawal, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.Serializable,
	})
	if err != nil {
		return nil, txError("failed to start tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		userEmail    string
		referralCode pgtype.Text
	)
	if err := tx.QueryRow(
		ctx,
		`
		SELECT email, referral_code
		FROM users
		WHERE lower(email) = lower($1)
		FOR UPDATE NOWAIT
		`,
		model.NormalizeEmail(email),
	).Scan(&userEmail, &referralCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, txError("failed to lock user", err)
	}
	if referralCode.String == "" {
		return nil, model.ErrReferralCodeNotFound
	}

	payments, err := queryPayments(
		ctx,
		tx,
		selectPaymentsByReferral,
		referralCode.String,
	)
	if err != nil {
		return nil, txError("failed to read payments", err)
	}

	selection := sel(referralCode.String, payments)
	if !selection.Total.IsPositive() {
		return nil, model.ErrInsufficientBalance
	}

	w := &model.Withdrawal{
		UserEmail:   userEmail,
		Amount:      selection.Total,
		Destination: dest.Normalize(),
	}

	qInsert := `
		INSERT INTO withdrawals (
			user_email, amount, bank_name, account_number, account_name, status
		)
		VALUES (
			@userEmail, @amount, @bankName, @accountNumber, @accountName, @status
		)
		RETURNING id, status, created_at
	`
	args := pgx.NamedArgs{
		"userEmail":     w.UserEmail,
		"amount":        w.Amount,
		"bankName":      w.Destination.BankName,
		"accountNumber": w.Destination.AccountNumber,
		"accountName":   w.Destination.AccountName,
		"status":        model.WithdrawalPending.String(),
	}

	var status string
	if err := tx.QueryRow(ctx, qInsert, args).Scan(
		&w.ID,
		&status,
		&w.CreatedAt,
	); err != nil {
		return nil, txError("failed to insert withdrawal", err)
	}
	w.Status = model.WithdrawalStatus(status)

	ids := selection.PaymentIDs()
	tag, err := tx.Exec(
		ctx,
		`
		UPDATE payments
		SET withdrawal_id = $1
		WHERE id = ANY($2) AND withdrawal_id IS NULL
		`,
		w.ID,
		ids,
	)
	if err != nil {
		return nil, txError("failed to settle payments", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return nil, fmt.Errorf(
			"%w: settled %d of %d payments",
			model.ErrConflict,
			tag.RowsAffected(),
			len(ids),
		)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, txError("failed to commit tx", err)
	}

	w.Payments = make([]model.Payment, 0, len(selection.Eligible))
	for _, p := range selection.Eligible {
		p.WithdrawalID = &w.ID
		w.Payments = append(w.Payments, p)
	}

	return w, nil
}

func (r *WithdrawalsRepo) CancelWithdrawal(
	ctx context.Context,
	id int64,
	ownerEmail string,
) (*model.Withdrawal, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, txError("failed to start tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	w, err := scanWithdrawal(tx.QueryRow(
		ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 FOR UPDATE NOWAIT`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWithdrawalNotFound
		}
		return nil, txError("failed to lock withdrawal", err)
	}

	if ownerEmail != "" &&
		model.NormalizeEmail(ownerEmail) != model.NormalizeEmail(w.UserEmail) {
		return nil, model.ErrWithdrawalNotFound
	}

	if !w.Cancellable() {
		return nil, fmt.Errorf(
			"%w: withdrawal %d is %s",
			model.ErrInvalidState,
			w.ID,
			w.Status,
		)
	}

	released, err := queryPayments(
		ctx,
		tx,
		`
		UPDATE payments
		SET withdrawal_id = NULL
		WHERE withdrawal_id = $1
		RETURNING `+paymentColumns,
		id,
	)
	if err != nil {
		return nil, txError("failed to release payments", err)
	}

	if _, err := tx.Exec(
		ctx,
		`DELETE FROM withdrawals WHERE id = $1`,
		id,
	); err != nil {
		return nil, txError("failed to delete withdrawal", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, txError("failed to commit tx", err)
	}

	w.Payments = released
	return &w, nil
}

func (r *WithdrawalsRepo) GetWithdrawalsByEmail(
	ctx context.Context,
	email string,
) ([]model.Withdrawal, error) {
	q := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE lower(user_email) = lower($1)
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, q, model.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("withdrawals query error: %w", err)
	}
	defer rows.Close()

	var (
		withdrawals []model.Withdrawal
		ids         []int64
	)
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("error reading values: %w", err)
		}
		withdrawals = append(withdrawals, w)
		ids = append(ids, w.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading values: %w", err)
	}
	if len(withdrawals) == 0 {
		return nil, nil
	}

	payments, err := queryPayments(
		ctx,
		r.db,
		`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE withdrawal_id = ANY($1)
		ORDER BY created_at ASC, id ASC
		`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawn payments: %w", err)
	}

	byWithdrawal := make(map[int64][]model.Payment, len(withdrawals))
	for _, p := range payments {
		byWithdrawal[*p.WithdrawalID] = append(byWithdrawal[*p.WithdrawalID], p)
	}
	for i := range withdrawals {
		withdrawals[i].Payments = byWithdrawal[withdrawals[i].ID]
	}

	return withdrawals, nil
}

func scanWithdrawal(row pgx.Row) (model.Withdrawal, error) {
	var (
		w      model.Withdrawal
		status string
	)
	if err := row.Scan(
		&w.ID,
		&w.UserEmail,
		&w.Amount,
		&w.Destination.BankName,
		&w.Destination.AccountNumber,
		&w.Destination.AccountName,
		&status,
		&w.CreatedAt,
	); err != nil {
		return model.Withdrawal{}, err
	}
	w.Status = model.WithdrawalStatus(status)

	return w, nil
}
