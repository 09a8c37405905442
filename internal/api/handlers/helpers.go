package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fragpit/commission/internal/api/middleware"
	"github.com/fragpit/commission/internal/model"
	"github.com/shopspring/decimal"
)

const maxBodySize = 1 << 20

func UserEmailFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(middleware.CtxUserEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

// requireUser writes 401 and reports false when the request is not
// authenticated.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := UserEmailFromContext(r.Context())
	if !ok {
		slog.Error(
			"request error",
			slog.String("error", "failed to get user email from context"),
		)
		http.Error(
			w,
			http.StatusText(http.StatusUnauthorized),
			http.StatusUnauthorized,
		)
	}
	return email, ok
}

// ValidateParseJSONRequest decodes a single JSON document into data. On
// failure it has already written the response and returns false.
func ValidateParseJSONRequest(
	w http.ResponseWriter,
	r *http.Request,
	data any,
) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		slog.Error(
			"request with an empty or unsupported content type",
			slog.String("content_type", r.Header.Get("Content-Type")),
		)
		http.Error(w, "wrong content type", http.StatusUnsupportedMediaType)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(data); err != nil {
		var mberr *http.MaxBytesError
		slog.Warn("invalid JSON", slog.Any("error", err))
		if errors.As(err, &mberr) {
			http.Error(
				w,
				"request body too large",
				http.StatusRequestEntityTooLarge,
			)
			return false
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		slog.Warn("invalid JSON", slog.Any("error", err))
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to marshal json response", slog.Any("error", err))
		http.Error(
			w,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError,
		)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(b); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}

// writeServiceError maps domain errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		slog.Info(op+" not found", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrInsufficientBalance):
		slog.Info(op+" rejected", slog.Any("error", err))
		http.Error(w, "insufficient balance", http.StatusPaymentRequired)
	case errors.Is(err, model.ErrConflict):
		slog.Warn(op+" conflict", slog.Any("error", err))
		w.Header().Set("Retry-After", "1")
		http.Error(w, "concurrent request in progress, retry", http.StatusConflict)
	case errors.Is(err, model.ErrInvalidState):
		slog.Info(op+" rejected", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrInvalidDestination),
		errors.Is(err, model.ErrInvalidAccountType),
		errors.Is(err, model.ErrEmptyReferralCode):
		slog.Info(op+" validation failed", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		slog.Error(op+" error", slog.Any("error", err))
		http.Error(
			w,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError,
		)
	}
}

type paymentResponse struct {
	ID           int64           `json:"id"`
	OrderID      string          `json:"order_id"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
	WithdrawalID *int64          `json:"withdrawal_id,omitempty"`
}

func newPaymentResponse(p model.Payment) paymentResponse {
	return paymentResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		Status:       p.Status.String(),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		WithdrawalID: p.WithdrawalID,
	}
}

func newPaymentsResponse(payments []model.Payment) []paymentResponse {
	resp := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, newPaymentResponse(p))
	}
	return resp
}
