package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/fragpit/commission/internal/model"
)

//go:generate mockgen -destination ./mocks/accounts_mock.go . AccountsService
type AccountsService interface {
	SaveAccount(
		ctx context.Context,
		email string,
		accountType string,
		dest model.Destination,
	) (*model.PaymentAccount, error)
	GetAccount(ctx context.Context, email string) (*model.PaymentAccount, error)
}

type accountRequest struct {
	Type          string `json:"type"`
	ProviderName  string `json:"provider_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

type accountResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	ProviderName  string `json:"provider_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	UpdatedAt     string `json:"updated_at"`
}

func newAccountResponse(a *model.PaymentAccount) *accountResponse {
	return &accountResponse{
		ID:            a.ID.String(),
		Type:          string(a.Type),
		ProviderName:  a.ProviderName,
		AccountNumber: a.AccountNumber,
		AccountName:   a.AccountName,
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

func NewGetAccountHandler(svc AccountsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		a, err := svc.GetAccount(r.Context(), email)
		if err != nil {
			writeServiceError(w, "payment account", err)
			return
		}

		writeJSON(w, http.StatusOK, newAccountResponse(a))
	})
}

func NewPutAccountHandler(svc AccountsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req accountRequest
		if !ValidateParseJSONRequest(w, r, &req) {
			return
		}

		a, err := svc.SaveAccount(r.Context(), email, req.Type, model.Destination{
			BankName:      req.ProviderName,
			AccountNumber: req.AccountNumber,
			AccountName:   req.AccountName,
		})
		if err != nil {
			writeServiceError(w, "save payment account", err)
			return
		}

		writeJSON(w, http.StatusOK, newAccountResponse(a))
	})
}
