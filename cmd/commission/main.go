package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	_ "time/tzdata"

	"github.com/fragpit/commission/internal/api/router"
	"github.com/fragpit/commission/internal/config"
	"github.com/fragpit/commission/internal/events"
	"github.com/fragpit/commission/internal/model"
	"github.com/fragpit/commission/internal/service/accounts"
	"github.com/fragpit/commission/internal/service/balance"
	"github.com/fragpit/commission/internal/service/healthcheck"
	"github.com/fragpit/commission/internal/service/identity"
	poller "github.com/fragpit/commission/internal/service/payment-poller"
	"github.com/fragpit/commission/internal/service/withdrawals"
	"github.com/fragpit/commission/internal/storage/postgresql"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to initialize config", slog.Any("error", err))
		os.Exit(1)
	}

	var logLevel slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case slog.LevelDebug.String():
		logLevel = slog.LevelDebug
	case slog.LevelWarn.String():
		logLevel = slog.LevelWarn
	case slog.LevelError.String():
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if logLevel == slog.LevelDebug {
		slog.Debug("running with config")
		fmt.Println(cfg.String())
	}

	slog.Info("starting app")

	pgStorage, err := postgresql.NewStorage(ctx, cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to initialize storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer pgStorage.Close()

	checkers := []healthcheck.Checker{pgStorage.Health}
	var publisher model.EventPublisher
	if cfg.EventsEnabled() {
		producer := events.NewProducer(events.Config{
			Broker:   cfg.KafkaBroker,
			Topic:    cfg.KafkaTopic,
			Username: cfg.KafkaUsername,
			Password: cfg.KafkaPassword,
		})
		defer func() {
			if err := producer.Close(); err != nil {
				slog.Error("failed to close kafka producer", slog.Any("error", err))
			}
		}()
		publisher = producer
		checkers = append(checkers, producer)
		slog.Info(
			"publishing withdrawal events",
			slog.String("broker", cfg.KafkaBroker),
			slog.String("topic", cfg.KafkaTopic),
		)
	}

	api := router.NewRouter(buildRouterDeps(cfg, pgStorage, publisher, checkers))

	wg := &sync.WaitGroup{}
	var exitCode int32

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting api", slog.String("address", cfg.RunAddress))
		if err := api.Run(ctx, cfg.RunAddress); err != nil {
			slog.Error("api failed", slog.Any("error", err))
			atomic.StoreInt32(&exitCode, 1)
			cancel()
			return
		}
		slog.Info("api shut down gracefully")
	}()

	if cfg.PollerEnabled() {
		p := poller.NewPoller(
			cfg.PaymentGatewayAddress,
			cfg.PaymentPollInterval,
			pgStorage.Poller,
		)

		wg.Add(1)
		go func() {
			defer wg.Done()
			slog.Info(
				"starting payment poller",
				slog.Duration("interval", cfg.PaymentPollInterval),
			)
			if err := p.Run(ctx); err != nil {
				slog.Error("payment poller failed", slog.Any("error", err))
				atomic.StoreInt32(&exitCode, 1)
				cancel()
				return
			}
			slog.Info("payment poller shut down gracefully")
		}()
	}

	wg.Wait()

	ec := int(atomic.LoadInt32(&exitCode))
	if ec != 0 {
		slog.Error("app failed", slog.Int("exit_code", ec))
		pgStorage.Close()
		os.Exit(ec)
	}

	slog.Info("app shut down successfully")
}

func buildRouterDeps(
	cfg *config.Config,
	st *postgresql.Repositories,
	publisher model.EventPublisher,
	checkers []healthcheck.Checker,
) router.ServiceDeps {
	return router.ServiceDeps{
		JWTSecret:       cfg.JWTSecret,
		HealthService:   healthcheck.NewHealthcheckService(checkers...),
		IdentityService: identity.NewIdentityService(st.Users, cfg.ReferralBaseURL),
		BalanceService: balance.NewBalanceService(
			st.Users,
			st.Payments,
			cfg.WindowLocation,
		),
		AccountsService: accounts.NewAccountsService(st.Accounts),
		WithdrawalsService: withdrawals.NewWithdrawalsService(
			st.Withdrawals,
			st.Accounts,
			publisher,
			cfg.WindowLocation,
		),
	}
}
