package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/tern/v2/migrate"
)

const migrationsTable = "commission_migrations"

func runMigrations(ctx context.Context, conn *pgxpool.Pool) error {
	poolConn, err := conn.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("error creating pool connection: %w", err)
	}
	defer poolConn.Release()

	m, err := migrate.NewMigrator(ctx, poolConn.Conn(), migrationsTable)
	if err != nil {
		return fmt.Errorf("error migrations init: %w", err)
	}

	m.Migrations = []*migrate.Migration{
		{
			Sequence: 1,
			Name:     "init",
			UpSQL: `
			CREATE TABLE IF NOT EXISTS users (
					id UUID PRIMARY KEY,
					email VARCHAR(255) NOT NULL,
					name VARCHAR(255) NOT NULL DEFAULT '',
					role VARCHAR(50) NOT NULL DEFAULT 'canvassing',
					referral_code VARCHAR(64) UNIQUE,
					status BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
			);

			CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower
			ON users (lower(email));

			CREATE TABLE IF NOT EXISTS withdrawals (
					id BIGSERIAL PRIMARY KEY,
					user_email VARCHAR(255) NOT NULL,
					amount NUMERIC(18,2) NOT NULL CHECK (amount > 0),
					bank_name VARCHAR(255) NOT NULL,
					account_number VARCHAR(100) NOT NULL,
					account_name VARCHAR(255) NOT NULL,
					status VARCHAR(20) NOT NULL DEFAULT 'pending',
					created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_withdrawals_user_email
			ON withdrawals (lower(user_email), created_at DESC);

			CREATE TABLE IF NOT EXISTS payments (
					id BIGSERIAL PRIMARY KEY,
					order_id VARCHAR(255) UNIQUE NOT NULL,
					referral_code VARCHAR(64),
					status VARCHAR(20) NOT NULL DEFAULT 'pending',
					amount NUMERIC(18,2) NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
					withdrawal_id BIGINT REFERENCES withdrawals(id) ON DELETE SET NULL,
					last_polled_at TIMESTAMP WITH TIME ZONE
			);

			CREATE INDEX IF NOT EXISTS idx_payments_referral_code
			ON payments (referral_code, created_at, id);

			CREATE INDEX IF NOT EXISTS idx_payments_withdrawal_id
			ON payments (withdrawal_id);

			CREATE INDEX IF NOT EXISTS idx_payments_pending
			ON payments (last_polled_at NULLS FIRST, id)
			WHERE status = 'pending';

			CREATE TABLE IF NOT EXISTS payment_accounts (
					id UUID PRIMARY KEY,
					user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					type VARCHAR(20) NOT NULL,
					provider_name VARCHAR(255) NOT NULL,
					account_number VARCHAR(100) NOT NULL,
					account_name VARCHAR(255) NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
			);
			`,
			DownSQL: `
			DROP TABLE IF EXISTS payment_accounts;
			DROP TABLE IF EXISTS payments;
			DROP TABLE IF EXISTS withdrawals;
			DROP TABLE IF EXISTS users;
			`,
		},
		{
			// Older deployments accumulated several accounts per user; keep
			// the most recently updated one before enforcing uniqueness.
			Sequence: 2,
			Name:     "single payment account per user",
			UpSQL: `
			DELETE FROM payment_accounts pa
			USING (
				SELECT id, ROW_NUMBER() OVER (
					PARTITION BY user_id
					ORDER BY updated_at DESC, created_at DESC, id
				) AS rn
				FROM payment_accounts
			) ranked
			WHERE pa.id = ranked.id AND ranked.rn > 1;

			ALTER TABLE payment_accounts
			ADD CONSTRAINT payment_accounts_user_id_key UNIQUE (user_id);
			`,
			DownSQL: `
			ALTER TABLE payment_accounts
			DROP CONSTRAINT IF EXISTS payment_accounts_user_id_key;
			`,
		},
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}
