package retry

import (
	"context"
	"log/slog"
	"time"
)

var defaultDelays = []time.Duration{
	1 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

type Retrier struct {
	isRetryable func(error) bool
	delays      []time.Duration
}

type Option func(*Retrier)

// WithDelays replaces the waits between attempts; len(delays) is the number
// of retries after the first attempt.
func WithDelays(delays ...time.Duration) Option {
	return func(r *Retrier) {
		r.delays = delays
	}
}

func New(isRetryable func(error) bool, opts ...Option) *Retrier {
	r := &Retrier{
		isRetryable: isRetryable,
		delays:      defaultDelays,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Retrier) Do(ctx context.Context, op func(context.Context) error) error {
	err := op(ctx)
	for attempt, delay := range r.delays {
		if err == nil || !r.isRetryable(err) {
			return err
		}

		slog.Debug(
			"retrying operation",
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}

		err = op(ctx)
	}
	return err
}
