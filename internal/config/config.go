package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrParameterNotSet = errors.New("config parameter is not set")
)

type Config struct {
	LogLevel    string
	RunAddress  string
	DatabaseURI string `json:"-"`

	JWTSecret string `json:"-"`
	JWTTTL    time.Duration

	ReferralBaseURL string
	WindowTimezone  string
	WindowLocation  *time.Location `json:"-"`

	PaymentGatewayAddress string
	PaymentPollInterval   time.Duration

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string `json:"-"`
}

// NewConfig reads flags from the command line. Environment variables, also
// loaded from an optional .env file, take precedence over flags.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return Parse(os.Args[1:], os.Getenv)
}

func Parse(args []string, getenv func(string) string) (*Config, error) {
	fset := flag.NewFlagSet("commission", flag.ContinueOnError)

	logLevel := fset.String("log-level", "info", "log level (default: info)")
	runAddress := fset.String("a", ":8080", "listen address")
	databaseURI := fset.String("d", "", "database connection string")
	jwtSecret := fset.String(
		"jwt-secret",
		"",
		"jwt secret key for token signing",
	)
	jwtTTL := fset.String("jwt-ttl", "24h", "jwt token ttl (default: 24h)")
	referralBaseURL := fset.String(
		"referral-base-url",
		"",
		"base url of referral share links",
	)
	windowTimezone := fset.String(
		"window-tz",
		"UTC",
		"time zone of eligibility window arithmetic (default: UTC)",
	)
	gatewayAddress := fset.String("r", "", "payment gateway address")
	pollInterval := fset.String(
		"poll-interval",
		"10s",
		"payment status poll interval (default: 10s)",
	)
	kafkaBroker := fset.String("kafka-broker", "", "kafka broker address")
	kafkaTopic := fset.String(
		"kafka-topic",
		"withdrawals",
		"kafka topic for withdrawal events (default: withdrawals)",
	)

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		LogLevel:              env("LOG_LEVEL", *logLevel),
		RunAddress:            env("RUN_ADDRESS", *runAddress),
		DatabaseURI:           env("DATABASE_URI", *databaseURI),
		JWTSecret:             env("JWT_SECRET", *jwtSecret),
		ReferralBaseURL:       env("REFERRAL_BASE_URL", *referralBaseURL),
		WindowTimezone:        env("WINDOW_TIMEZONE", *windowTimezone),
		PaymentGatewayAddress: env("PAYMENT_GATEWAY_ADDRESS", *gatewayAddress),
		KafkaBroker:           env("KAFKA_BROKER", *kafkaBroker),
		KafkaTopic:            env("KAFKA_TOPIC", *kafkaTopic),
		KafkaUsername:         getenv("KAFKA_USERNAME"),
		KafkaPassword:         getenv("KAFKA_PASSWORD"),
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI error %w", ErrParameterNotSet)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("no jwt secret set %w", ErrParameterNotSet)
	}

	var err error
	cfg.JWTTTL, err = time.ParseDuration(env("JWT_TTL", *jwtTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid jwt ttl: %w", err)
	}

	cfg.PaymentPollInterval, err = time.ParseDuration(
		env("PAYMENT_POLL_INTERVAL", *pollInterval),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid payment poll interval: %w", err)
	}
	if cfg.PaymentPollInterval <= 0 {
		return nil, fmt.Errorf(
			"payment poll interval must be positive, got %s",
			cfg.PaymentPollInterval,
		)
	}

	cfg.WindowLocation, err = time.LoadLocation(cfg.WindowTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid window time zone: %w", err)
	}

	return cfg, nil
}

func (c *Config) PollerEnabled() bool {
	return c.PaymentGatewayAddress != ""
}

func (c *Config) EventsEnabled() bool {
	return c.KafkaBroker != "" && c.KafkaTopic != ""
}

func (c *Config) String() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(b)
}
