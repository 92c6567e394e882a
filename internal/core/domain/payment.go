package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a completed debit. Created exactly once per completed
// reservation, immutable afterwards.
type Payment struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	CustomerID    uuid.UUID
	Amount        int64
	PaidAt        time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OutboxStatus string

const (
	OutboxInit   OutboxStatus = "INIT"
	OutboxSent   OutboxStatus = "SENT"
	OutboxFailed OutboxStatus = "FAILED"
)

// PaymentOutbox stages a payment-completed event inside the payment
// transaction. Only the relay mutates it after commit.
type PaymentOutbox struct {
	ID         uuid.UUID
	PaymentID  uuid.UUID
	Payload    []byte
	Status     OutboxStatus
	RetryCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PaymentCompletedEvent is the payload serialized into the outbox row and
// published to the bus by the relay.
type PaymentCompletedEvent struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	SeatID        uuid.UUID `json:"seat_id"`
	ScheduleID    uuid.UUID `json:"schedule_id"`
	Amount        int64     `json:"amount"`
	PaidAt        time.Time `json:"paid_at"`
}
