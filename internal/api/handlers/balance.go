package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/fragpit/commission/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination ./mocks/balance_mock.go . BalanceService
type BalanceService interface {
	GetUserBalance(ctx context.Context, email string) (model.Selection, error)
	GetRecentPayments(ctx context.Context, email string) ([]model.Payment, error)
}

type windowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func newWindowResponse(w *model.Window) *windowResponse {
	if w == nil {
		return nil
	}
	return &windowResponse{
		Start: w.Start.Format(time.RFC3339),
		End:   w.End.Format(time.RFC3339),
	}
}

type balanceResponse struct {
	Balance    decimal.Decimal `json:"balance"`
	Window     *windowResponse `json:"window"`
	PaymentIDs []int64         `json:"payment_ids"`
}

func NewBalanceHandler(svc BalanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		sel, err := svc.GetUserBalance(r.Context(), email)
		if err != nil {
			writeServiceError(w, "balance", err)
			return
		}

		writeJSON(w, http.StatusOK, &balanceResponse{
			Balance:    sel.Total,
			Window:     newWindowResponse(sel.Window),
			PaymentIDs: sel.PaymentIDs(),
		})
	})
}

type rejectionResponse struct {
	Payment paymentResponse `json:"payment"`
	Reason  string          `json:"reason"`
}

type diagnosticsResponse struct {
	ReferralCode string              `json:"referral_code"`
	Balance      decimal.Decimal     `json:"balance"`
	Window       *windowResponse     `json:"window"`
	Eligible     []paymentResponse   `json:"eligible"`
	Rejected     []rejectionResponse `json:"rejected"`
}

// NewBalanceDiagnosticsHandler explains the balance: every payment of the
// user's code with the reason it was or was not counted.
func NewBalanceDiagnosticsHandler(svc BalanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		sel, err := svc.GetUserBalance(r.Context(), email)
		if err != nil {
			writeServiceError(w, "balance diagnostics", err)
			return
		}

		resp := &diagnosticsResponse{
			ReferralCode: sel.ReferralCode,
			Balance:      sel.Total,
			Window:       newWindowResponse(sel.Window),
			Eligible:     newPaymentsResponse(sel.Eligible),
			Rejected:     make([]rejectionResponse, 0, len(sel.Rejected)),
		}
		for _, rej := range sel.Rejected {
			resp.Rejected = append(resp.Rejected, rejectionResponse{
				Payment: newPaymentResponse(rej.Payment),
				Reason:  string(rej.Reason),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func NewPaymentsHandler(svc BalanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireUser(w, r)
		if !ok {
			return
		}

		payments, err := svc.GetRecentPayments(r.Context(), email)
		if err != nil {
			writeServiceError(w, "payments", err)
			return
		}

		if len(payments) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, newPaymentsResponse(payments))
	})
}
