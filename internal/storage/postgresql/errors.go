package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/commission/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// txError classifies a failure inside a settlement transaction. Lock and
// serialization failures are conflicts the caller may retry.
func txError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure,
			pgerrcode.DeadlockDetected,
			pgerrcode.LockNotAvailable:
			return fmt.Errorf("%s: %w: %w", msg, model.ErrConflict, err)
		}
	}

	if errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	return fmt.Errorf("%s: %w: %w", msg, model.ErrStorageFailure, err)
}
