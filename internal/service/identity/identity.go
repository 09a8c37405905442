package identity

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fragpit/commission/internal/api/handlers"
	"github.com/fragpit/commission/internal/model"
)

var _ handlers.IdentityService = (*IdentityService)(nil)

const referralPath = "referral"

type IdentityService struct {
	users           model.UsersRepository
	referralBaseURL string
}

func NewIdentityService(
	users model.UsersRepository,
	referralBaseURL string,
) *IdentityService {
	return &IdentityService{
		users:           users,
		referralBaseURL: strings.TrimRight(referralBaseURL, "/"),
	}
}

// GetStatus is the synchronous status query; callers poll it when they need
// to notice deactivation.
func (s *IdentityService) GetStatus(
	ctx context.Context,
	email string,
) (*model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *IdentityService) GetReferral(
	ctx context.Context,
	email string,
) (*model.Referral, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !u.HasReferralCode() {
		return nil, model.ErrReferralCodeNotFound
	}

	r := &model.Referral{Code: u.ReferralCode}
	if s.referralBaseURL == "" {
		return r, nil
	}

	link, err := url.JoinPath(s.referralBaseURL, referralPath, u.ReferralCode)
	if err != nil {
		return nil, fmt.Errorf("failed to build referral url: %w", err)
	}
	r.URL = link

	return r, nil
}
