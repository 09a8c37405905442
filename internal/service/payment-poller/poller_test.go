package poller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fragpit/commission/internal/model"
	mocks "github.com/fragpit/commission/internal/service/payment-poller/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newGateway(t *testing.T, statuses map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := strings.TrimPrefix(r.URL.Path, getPaymentURL)
		switch status, ok := statuses[orderID]; {
		case !ok:
			w.WriteHeader(http.StatusNotFound)
		case status == "throttle":
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		case status == "boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"order_id":"` + orderID + `","status":"` + status + `"}`))
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestPoller(url string, repo PollerRepository) *Poller {
	p := NewPoller(url, time.Hour, repo)
	p.Client.SetRetryCount(0)
	p.WorkersNum = 1
	return p
}

func TestPoller_Poll(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	srv := newGateway(t, map[string]string{
		"ORD-1": "success",
		"ORD-2": "PENDING",
		"ORD-3": "expired",
		"ORD-4": "refunded",
	})

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPollerRepository(ctrl)
	p := newTestPoller(srv.URL, repo)

	repo.EXPECT().GetPendingBatch(gomock.Any(), p.BatchSize).Return([]model.Payment{
		{ID: 1, OrderID: "ORD-1", Status: model.PaymentPending},
		{ID: 2, OrderID: "ORD-2", Status: model.PaymentPending},
		{ID: 3, OrderID: "ORD-3", Status: model.PaymentPending},
		{ID: 4, OrderID: "ORD-4", Status: model.PaymentPending},
		{ID: 5, OrderID: "ORD-5", Status: model.PaymentPending},
	}, nil)
	repo.EXPECT().SetStatus(gomock.Any(), int64(1), model.PaymentSuccess).Return(nil)
	repo.EXPECT().SetStatus(gomock.Any(), int64(3), model.PaymentExpired).Return(nil)

	require.NoError(t, p.Poll(context.Background()))
}

func TestPoller_PollEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPollerRepository(ctrl)
	p := newTestPoller("http://127.0.0.1:0", repo)

	repo.EXPECT().GetPendingBatch(gomock.Any(), p.BatchSize).Return(nil, nil)

	assert.NoError(t, p.Poll(context.Background()))
}

func TestPoller_PollErrors(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	errDB := errors.New("db error")
	srv := newGateway(t, map[string]string{"ORD-1": "boom", "ORD-2": "failed"})

	tests := []struct {
		name    string
		prepare func(*mocks.MockPollerRepository)
		wantErr error
	}{
		{
			name: "batch error",
			prepare: func(r *mocks.MockPollerRepository) {
				r.EXPECT().GetPendingBatch(gomock.Any(), gomock.Any()).Return(nil, errDB)
			},
			wantErr: errDB,
		},
		{
			name: "gateway error",
			prepare: func(r *mocks.MockPollerRepository) {
				r.EXPECT().GetPendingBatch(gomock.Any(), gomock.Any()).
					Return([]model.Payment{{ID: 1, OrderID: "ORD-1"}}, nil)
			},
		},
		{
			name: "status write error",
			prepare: func(r *mocks.MockPollerRepository) {
				r.EXPECT().GetPendingBatch(gomock.Any(), gomock.Any()).
					Return([]model.Payment{{ID: 2, OrderID: "ORD-2"}}, nil)
				r.EXPECT().SetStatus(gomock.Any(), int64(2), model.PaymentFailed).
					Return(errDB)
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPollerRepository(ctrl)
			p := newTestPoller(srv.URL, repo)
			tt.prepare(repo)

			err := p.Poll(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPoller_TooManyRequests(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	srv := newGateway(t, map[string]string{"ORD-1": "throttle", "ORD-2": "success"})

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPollerRepository(ctrl)
	p := newTestPoller(srv.URL, repo)

	repo.EXPECT().GetPendingBatch(gomock.Any(), gomock.Any()).Return([]model.Payment{
		{ID: 1, OrderID: "ORD-1"},
		{ID: 2, OrderID: "ORD-2"},
	}, nil)

	require.NoError(t, p.Poll(context.Background()))
	assert.True(t, p.throttled())
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 30*time.Second, parseRetryAfter(" 30 "))
	assert.Equal(t, defaultRetryAfterPeriod, parseRetryAfter(""))
	assert.Equal(t, defaultRetryAfterPeriod, parseRetryAfter("soon"))
	assert.Equal(t, defaultRetryAfterPeriod, parseRetryAfter("-1"))
}
