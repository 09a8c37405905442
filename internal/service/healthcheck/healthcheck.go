package healthcheck

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -destination ./mocks/checker.go . Checker
type Checker interface {
	Name() string
	Ping(ctx context.Context) error
}

type HealthService struct {
	checkers []Checker
}

func NewHealthcheckService(checkers ...Checker) *HealthService {
	return &HealthService{
		checkers: checkers,
	}
}

// Check pings every dependency and reports all failures together.
func (h *HealthService) Check(ctx context.Context) error {
	var errs []error
	for _, c := range h.checkers {
		if err := c.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
		}
	}

	return errors.Join(errs...)
}
