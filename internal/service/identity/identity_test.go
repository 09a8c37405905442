package identity

import (
	"context"
	"testing"

	"github.com/fragpit/commission/internal/model"
	mocks "github.com/fragpit/commission/internal/service/identity/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdentityService_GetReferral(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		user    *model.User
		repoErr error
		want    *model.Referral
		wantErr error
	}{
		{
			name:    "with share url",
			baseURL: "http://pay.example.com/",
			user:    &model.User{Email: "a@b.c", ReferralCode: "ABC123"},
			want: &model.Referral{
				Code: "ABC123",
				URL:  "http://pay.example.com/referral/ABC123",
			},
		},
		{
			name: "without base url",
			user: &model.User{Email: "a@b.c", ReferralCode: "ABC123"},
			want: &model.Referral{Code: "ABC123"},
		},
		{
			name:    "no referral code",
			baseURL: "http://pay.example.com",
			user:    &model.User{Email: "a@b.c"},
			wantErr: model.ErrReferralCodeNotFound,
		},
		{
			name:    "unknown user",
			repoErr: model.ErrUserNotFound,
			wantErr: model.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockUsersRepository(ctrl)
			ctx := context.Background()
			svc := NewIdentityService(repo, tt.baseURL)

			repo.EXPECT().GetByEmail(ctx, "a@b.c").Return(tt.user, tt.repoErr)

			got, err := svc.GetReferral(ctx, "a@b.c")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUsersRepository(ctrl)
	ctx := context.Background()
	svc := NewIdentityService(repo, "")

	repo.EXPECT().GetByEmail(ctx, "A@B.C").
		Return(&model.User{Email: "a@b.c", Active: false}, nil)

	u, err := svc.GetStatus(ctx, "A@B.C")
	require.NoError(t, err)
	assert.False(t, u.Active)
}
