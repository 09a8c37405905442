package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fragpit/commission/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination ./mocks/withdrawals_mock.go . WithdrawalsService
type WithdrawalsService interface {
	CreateWithdrawal(
		ctx context.Context,
		email string,
		dest model.Destination,
	) (*model.Withdrawal, error)
	CancelUserWithdrawal(ctx context.Context, email string, id int64) error
	GetWithdrawalsByUser(
		ctx context.Context,
		email string,
	) ([]model.Withdrawal, error)
}

type withdrawalRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

type withdrawalResponse struct {
	ID            int64             `json:"id"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        string            `json:"status"`
	BankName      string            `json:"bank_name"`
	AccountNumber string            `json:"account_number"`
	AccountName   string            `json:"account_name"`
	CreatedAt     string            `json:"created_at"`
	Payments      []paymentResponse `json:"payments"`
}

func newWithdrawalResponse(wd *model.Withdrawal) withdrawalResponse {
	return withdrawalResponse{
		ID:            wd.ID,
		Amount:        wd.Amount,
		Status:        wd.Status.String(),
		BankName:      wd.Destination.BankName,
		AccountNumber: wd.Destination.AccountNumber,
		AccountName:   wd.Destination.AccountName,
		CreatedAt:     wd.CreatedAt.Format(time.RFC3339),
		Payments:      newPaymentsResponse(wd.Payments),
	}
}

// NewCreateWithdrawalHandler withdraws the whole balance. An empty body pays
// out to the account on file.
func NewCreateWithdrawalHandler(svc WithdrawalsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req withdrawalRequest
		if r.ContentLength != 0 {
			if !ValidateParseJSONRequest(w, r, &req) {
				return
			}
		}

		wd, err := svc.CreateWithdrawal(r.Context(), email, model.Destination{
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			AccountName:   req.AccountName,
		})
		if err != nil {
			writeServiceError(w, "create withdrawal", err)
			return
		}

		writeJSON(w, http.StatusCreated, newWithdrawalResponse(wd))
	})
}

func NewWithdrawalsHandler(svc WithdrawalsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		withdrawals, err := svc.GetWithdrawalsByUser(r.Context(), email)
		if err != nil {
			writeServiceError(w, "withdrawals", err)
			return
		}

		if len(withdrawals) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]withdrawalResponse, 0, len(withdrawals))
		for i := range withdrawals {
			response = append(response, newWithdrawalResponse(&withdrawals[i]))
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func NewCancelWithdrawalHandler(svc WithdrawalsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || id <= 0 {
			slog.Warn(
				"invalid withdrawal id",
				slog.String("id", r.PathValue("id")),
			)
			http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
			return
		}

		if err := svc.CancelUserWithdrawal(r.Context(), email, id); err != nil {
			writeServiceError(w, "cancel withdrawal", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
