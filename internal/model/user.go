package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination ../service/identity/mocks/users_repo.go . UsersRepository
type UsersRepository interface {
	// GetByEmail matches the email case-insensitively.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         string
	ReferralCode string
	Active       bool
	CreatedAt    time.Time
}

func (u *User) HasReferralCode() bool {
	return u != nil && u.ReferralCode != ""
}

// NormalizeEmail is the single lookup key policy for every entry point:
// surrounding whitespace is dropped and case is folded.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Referral is the share link of a user's referral code.
type Referral struct {
	Code string
	URL  string
}
