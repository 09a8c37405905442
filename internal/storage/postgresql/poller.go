package postgresql

import (
	"context"
	"fmt"

	"github.com/fragpit/commission/internal/model"
	poller "github.com/fragpit/commission/internal/service/payment-poller"
)

var _ poller.PollerRepository = (*PollerRepo)(nil)

type PollerRepo struct {
	baseRepo
}

// SetStatus only moves payments that are still pending; settled payments
// are never touched here.
func (r *PollerRepo) SetStatus(
	ctx context.Context,
	id int64,
	status model.PaymentStatus,
) error {
	q := `
		UPDATE payments
		SET status = $1
		WHERE id = $2 AND status = 'pending'
	`

	if _, err := r.db.Exec(ctx, q, status.String(), id); err != nil {
		return fmt.Errorf("failed to set payment status: %w", err)
	}

	return nil
}

func (r *PollerRepo) GetPendingBatch(
	ctx context.Context,
	batchSize int,
) ([]model.Payment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	qSelect := `
		SELECT id FROM payments
		WHERE status = 'pending'
		ORDER BY last_polled_at NULLS FIRST, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	rows, err := tx.Query(ctx, qSelect, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query tx: %w", err)
	}

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}
	if len(ids) == 0 {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit tx: %w", err)
		}
		return nil, nil
	}

	payments, err := queryPayments(
		ctx,
		tx,
		`
		UPDATE payments
		SET last_polled_at = NOW()
		WHERE id = ANY($1)
		RETURNING `+paymentColumns,
		ids,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit tx: %w", err)
	}

	return payments, nil
}
