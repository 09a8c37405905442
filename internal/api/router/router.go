package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fragpit/commission/internal/api/handlers"
	"github.com/fragpit/commission/internal/api/middleware"
)

const (
	apiShutdownTimeout = 5 * time.Second
	readHeaderTimeout  = 5 * time.Second
)

type ServiceDeps struct {
	JWTSecret string

	HealthService      handlers.HealthService
	IdentityService    handlers.IdentityService
	BalanceService     handlers.BalanceService
	AccountsService    handlers.AccountsService
	WithdrawalsService handlers.WithdrawalsService
}

type Router struct {
	router http.Handler
}

func NewRouter(deps ServiceDeps) *Router {
	mux := http.NewServeMux()

	mux.Handle("GET /health", handlers.NewHealthHandler(deps.HealthService))

	authed := middleware.RequireJWT(deps.JWTSecret)
	user := func(pattern string, h http.Handler) {
		mux.Handle(pattern, authed(h))
	}

	user("GET /api/user/status", handlers.NewUserStatusHandler(deps.IdentityService))
	user("GET /api/user/referral", handlers.NewReferralHandler(deps.IdentityService))

	user("GET /api/user/balance", handlers.NewBalanceHandler(deps.BalanceService))
	user(
		"GET /api/user/balance/diagnostics",
		handlers.NewBalanceDiagnosticsHandler(deps.BalanceService),
	)
	user("GET /api/user/payments", handlers.NewPaymentsHandler(deps.BalanceService))

	user(
		"GET /api/user/payment-account",
		handlers.NewGetAccountHandler(deps.AccountsService),
	)
	user(
		"PUT /api/user/payment-account",
		handlers.NewPutAccountHandler(deps.AccountsService),
	)

	user(
		"POST /api/user/withdrawals",
		handlers.NewCreateWithdrawalHandler(deps.WithdrawalsService),
	)
	user(
		"GET /api/user/withdrawals",
		handlers.NewWithdrawalsHandler(deps.WithdrawalsService),
	)
	user(
		"DELETE /api/user/withdrawals/{id}",
		handlers.NewCancelWithdrawalHandler(deps.WithdrawalsService),
	)

	return &Router{
		router: middleware.Log()(mux),
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", slog.Any("error", err))
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(
			context.WithoutCancel(ctx),
			apiShutdownTimeout,
		)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error(
				"failed to shutdown server gracefully",
				slog.Any("error", err),
			)
			return err
		}
	}

	return nil
}
