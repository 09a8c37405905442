// Package events publishes withdrawal lifecycle events to Kafka for the
// back-office approval workflow.
package events

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/fragpit/commission/internal/model"
	"github.com/fragpit/commission/internal/service/healthcheck"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

var (
	_ model.EventPublisher = (*Producer)(nil)
	_ healthcheck.Checker  = (*Producer)(nil)
)

const (
	writeTimeout = 10 * time.Second
	dialTimeout  = 3 * time.Second
)

type Config struct {
	Broker   string
	Topic    string
	Username string
	Password string
}

type Producer struct {
	writer *kafka.Writer
	dialer *kafka.Dialer
	broker string
}

// NewProducer enables SASL/PLAIN over TLS when a username is configured.
func NewProducer(cfg Config) *Producer {
	transport := &kafka.Transport{}
	dialer := &kafka.Dialer{Timeout: dialTimeout}

	if cfg.Username != "" {
		var mechanism sasl.Mechanism = plain.Mechanism{
			Username: cfg.Username,
			Password: cfg.Password,
		}
		tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}

		transport.SASL = mechanism
		transport.TLS = tlsCfg
		dialer.SASLMechanism = mechanism
		dialer.TLS = tlsCfg
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Broker),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Transport:    transport,
			WriteTimeout: writeTimeout,
		},
		dialer: dialer,
		broker: cfg.Broker,
	}
}

// Publish is a no-op on a nil producer.
func (p *Producer) Publish(ctx context.Context, e model.WithdrawalEvent) error {
	if p == nil || p.writer == nil {
		slog.Debug("kafka producer not configured, skipping event")
		return nil
	}

	msg, err := encode(e)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write %s event: %w", e.Type, err)
	}

	return nil
}

func (p *Producer) Name() string {
	return "kafka"
}

func (p *Producer) Ping(ctx context.Context) error {
	conn, err := p.dialer.DialContext(ctx, "tcp", p.broker)
	if err != nil {
		return fmt.Errorf("failed to dial broker: %w", err)
	}
	return conn.Close()
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// encode keys messages by withdrawal id so that created and cancelled
// events of one withdrawal land on the same partition.
func encode(e model.WithdrawalEvent) (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(e.WithdrawalID, 10)),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}, nil
}
