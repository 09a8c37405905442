package handlers

import (
	"context"
	"net/http"

	"github.com/fragpit/commission/internal/model"
)

//go:generate mockgen -destination ./mocks/identity_mock.go . IdentityService
type IdentityService interface {
	GetStatus(ctx context.Context, email string) (*model.User, error)
	GetReferral(ctx context.Context, email string) (*model.Referral, error)
}

type statusResponse struct {
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

func NewUserStatusHandler(svc IdentityService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		u, err := svc.GetStatus(r.Context(), email)
		if err != nil {
			writeServiceError(w, "user status", err)
			return
		}

		writeJSON(w, http.StatusOK, &statusResponse{
			Email:  u.Email,
			Active: u.Active,
		})
	})
}

type referralResponse struct {
	ReferralCode string `json:"referral_code"`
	ReferralURL  string `json:"referral_url,omitempty"`
}

func NewReferralHandler(svc IdentityService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		ref, err := svc.GetReferral(r.Context(), email)
		if err != nil {
			writeServiceError(w, "referral", err)
			return
		}

		writeJSON(w, http.StatusOK, &referralResponse{
			ReferralCode: ref.Code,
			ReferralURL:  ref.URL,
		})
	})
}
