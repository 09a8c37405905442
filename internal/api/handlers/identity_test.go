package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_handlers "github.com/fragpit/commission/internal/api/handlers/mocks"
	"github.com/fragpit/commission/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserStatusHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name     string
		user     *model.User
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "active",
			user:     &model.User{Email: testEmail, Active: true},
			wantCode: http.StatusOK,
			wantBody: `{"email":"seller@example.com","active":true}`,
		},
		{
			name:     "unknown user",
			err:      model.ErrUserNotFound,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockIdentityService(ctrl)
			m.EXPECT().GetStatus(gomock.Any(), testEmail).Return(tc.user, tc.err)

			rec := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, "/api/user/status", testEmail, nil)
			NewUserStatusHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestReferralHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name     string
		ref      *model.Referral
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "with url",
			ref: &model.Referral{
				Code: "ABC",
				URL:  "http://pay.example.com/referral/ABC",
			},
			wantCode: http.StatusOK,
			wantBody: `{"referral_code":"ABC","referral_url":"http://pay.example.com/referral/ABC"}`,
		},
		{
			name:     "no code",
			err:      model.ErrReferralCodeNotFound,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockIdentityService(ctrl)
			m.EXPECT().GetReferral(gomock.Any(), testEmail).Return(tc.ref, tc.err)

			rec := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, "/api/user/referral", testEmail, nil)
			NewReferralHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
