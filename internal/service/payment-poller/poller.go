// Package poller refreshes the status of pending payments from the payment
// gateway. It only ever moves a payment out of pending and never touches
// withdrawal references.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fragpit/commission/internal/model"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination ./mocks/poller_repo.go . PollerRepository

const (
	clientTimeout           = 5 * time.Second
	getPaymentURL           = "/api/payments/"
	defaultRetryAfterPeriod = 60 * time.Second
)

type PollerRepository interface {
	// GetPendingBatch claims up to batchSize pending payments, least recently
	// polled first.
	GetPendingBatch(ctx context.Context, batchSize int) ([]model.Payment, error)
	SetStatus(ctx context.Context, id int64, status model.PaymentStatus) error
}

type GatewayResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type Poller struct {
	PollInterval time.Duration
	Client       *resty.Client

	repo        PollerRepository
	nextAllowed atomic.Int64

	WorkersNum int
	BatchSize  int
}

func NewPoller(
	gatewayAddress string,
	interval time.Duration,
	repo PollerRepository,
) *Poller {
	client := resty.New()

	client.
		SetTimeout(clientTimeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetBaseURL(gatewayAddress)

	p := &Poller{
		PollInterval: interval,
		Client:       client,
		repo:         repo,
		BatchSize:    20,
		WorkersNum:   3,
	}
	p.nextAllowed.Store(time.Now().UnixNano())

	return p
}

// Run polls until ctx is done. A failed round is logged and the next tick
// tries again.
func (p *Poller) Run(ctx context.Context) error {
	tick := time.NewTicker(p.PollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if p.throttled() {
				continue
			}

			slog.Debug("polling pending payments")
			if err := p.Poll(ctx); err != nil && ctx.Err() == nil {
				slog.Error("payment poll failed", slog.Any("error", err))
			}
		}
	}
}

// Poll processes one batch of pending payments.
func (p *Poller) Poll(ctx context.Context) error {
	payments, err := p.repo.GetPendingBatch(ctx, p.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to get pending payments: %w", err)
	}
	slog.Debug("fetched pending payments", slog.Int("count", len(payments)))
	if len(payments) == 0 {
		return nil
	}

	jobs := make(chan model.Payment, len(payments))
	g, ctx := errgroup.WithContext(ctx)
	for range p.WorkersNum {
		g.Go(func() error {
			for j := range jobs {
				if ctx.Err() != nil || p.throttled() {
					return nil
				}
				if err := p.handlePayment(ctx, &j); err != nil {
					return err
				}
			}
			return nil
		})
	}

	for _, pm := range payments {
		jobs <- pm
	}
	close(jobs)

	return g.Wait()
}

func (p *Poller) handlePayment(ctx context.Context, payment *model.Payment) error {
	var body GatewayResponse
	resp, err := p.Client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(getPaymentURL + payment.OrderID)
	if err != nil {
		return fmt.Errorf("failed to request payment status: %w", err)
	}

	switch sc := resp.StatusCode(); sc {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusNotFound:
		slog.Debug(
			"payment is not known to the gateway",
			slog.String("order_id", payment.OrderID),
		)
		return nil
	case http.StatusTooManyRequests:
		d := parseRetryAfter(resp.Header().Get("Retry-After"))
		p.setRetryAfter(d)
		slog.Info(
			"too many requests to payment gateway, backing off",
			slog.Duration("period", d),
		)
		return nil
	default:
		return fmt.Errorf("failed to request payment status, http_code=%d", sc)
	}

	status := model.PaymentStatus(strings.ToLower(strings.TrimSpace(body.Status)))
	if status == model.PaymentPending {
		return nil
	}
	if !status.Terminal() {
		slog.Warn(
			"unknown payment status from gateway",
			slog.String("order_id", payment.OrderID),
			slog.String("status", body.Status),
		)
		return nil
	}

	if err := p.repo.SetStatus(ctx, payment.ID, status); err != nil {
		return fmt.Errorf("failed to set payment status: %w", err)
	}
	slog.Info(
		"payment status updated",
		slog.String("order_id", payment.OrderID),
		slog.String("status", status.String()),
	)

	return nil
}

func (p *Poller) throttled() bool {
	return time.Now().UnixNano() < p.nextAllowed.Load()
}

func (p *Poller) setRetryAfter(d time.Duration) {
	p.nextAllowed.Store(time.Now().Add(d).UnixNano())
}

func parseRetryAfter(raw string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return defaultRetryAfterPeriod
	}
	return time.Duration(secs) * time.Second
}
