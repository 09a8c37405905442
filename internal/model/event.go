package model

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventWithdrawalCreated   EventType = "withdrawal.created"
	EventWithdrawalCancelled EventType = "withdrawal.cancelled"
)

type WithdrawalEvent struct {
	Type         EventType       `json:"type"`
	WithdrawalID int64           `json:"withdrawal_id"`
	UserEmail    string          `json:"user_email,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentIDs   []int64         `json:"payment_ids,omitempty"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

//go:generate mockgen -destination ../service/withdrawals/mocks/publisher.go . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, e WithdrawalEvent) error
}
