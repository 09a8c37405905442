package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/commission/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ model.UsersRepository = (*UsersRepo)(nil)

type UsersRepo struct {
	baseRepo
}

func (r *UsersRepo) GetByEmail(
	ctx context.Context,
	email string,
) (*model.User, error) {
	q := `
		SELECT id, email, name, role, referral_code, status, created_at
		FROM users
		WHERE lower(email) = lower($1)
	`

	var (
		u            model.User
		referralCode pgtype.Text
	)
	row := r.db.QueryRow(ctx, q, model.NormalizeEmail(email))
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Role,
		&referralCode,
		&u.Active,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	u.ReferralCode = referralCode.String

	return &u, nil
}
