package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/commission/internal/utils/retry"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type baseRepo struct {
	db      *pgxpool.Pool
	retrier *retry.Retrier
}

type Repositories struct {
	db *pgxpool.Pool

	Health      *HealthRepo
	Users       *UsersRepo
	Payments    *PaymentsRepo
	Withdrawals *WithdrawalsRepo
	Accounts    *AccountsRepo
	Poller      *PollerRepo
}

func NewStorage(ctx context.Context, dbDSN string) (*Repositories, error) {
	cfg, err := pgxpool.ParseConfig(dbDSN)
	if err != nil {
		return nil, fmt.Errorf("error parsing database dsn: %w", err)
	}
	cfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	db, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating pgxpool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return newRepositories(db), nil
}

func newRepositories(db *pgxpool.Pool) *Repositories {
	isRetryable := func(err error) bool {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return pgerrcode.IsConnectionException(pgErr.Code) ||
				pgerrcode.IsOperatorIntervention(pgErr.Code)
		}

		var connErr *pgconn.ConnectError
		return errors.As(err, &connErr)
	}

	base := baseRepo{
		db:      db,
		retrier: retry.New(isRetryable),
	}

	return &Repositories{
		db:          db,
		Health:      &HealthRepo{base},
		Users:       &UsersRepo{base},
		Payments:    &PaymentsRepo{base},
		Withdrawals: &WithdrawalsRepo{base},
		Accounts:    &AccountsRepo{base},
		Poller:      &PollerRepo{base},
	}
}

func (r *Repositories) Close() {
	r.db.Close()
}
