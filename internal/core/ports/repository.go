package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"concert-ticketing/internal/core/domain"
)

// Transactor runs fn inside a single database transaction. The transaction
// is carried in the context; repository calls made with that context join
// it. A nested call reuses the surrounding transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type SeatRepository interface {
	GetByID(ctx context.Context, seatID uuid.UUID) (*domain.Seat, error)
	// GetByIDForUpdate reads the seat under an exclusive row lock. Must be
	// called inside a transaction; the lock is held until it ends.
	GetByIDForUpdate(ctx context.Context, seatID uuid.UUID) (*domain.Seat, error)
	FindAvailableBySchedule(ctx context.Context, scheduleID uuid.UUID, now time.Time) ([]domain.Seat, error)
	// Update persists seat state unconditionally and bumps the version.
	Update(ctx context.Context, seat *domain.Seat) error
	// UpdateVersioned persists seat state only if the stored version still
	// equals expectedVersion, returning domain.ErrConcurrentModification
	// when another writer got there first.
	UpdateVersioned(ctx context.Context, seat *domain.Seat, expectedVersion int) error
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error)
	GetByIDForUpdate(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status domain.ReservationStatus) error
	// FindExpiredPending returns PENDING reservations whose seat hold
	// expired before now and whose seat is not finally reserved.
	FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.Reservation, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	GetByIDForUpdate(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	UpdatePoints(ctx context.Context, customerID uuid.UUID, points int64) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, record *domain.PaymentOutbox) error
	// FindPending returns INIT records oldest first, regardless of retry
	// count; the relay decides when a record has exhausted its retries.
	FindPending(ctx context.Context, limit int) ([]domain.PaymentOutbox, error)
	MarkSent(ctx context.Context, outboxID uuid.UUID) error
	MarkFailed(ctx context.Context, outboxID uuid.UUID) error
	IncrementRetry(ctx context.Context, outboxID uuid.UUID) error
}

// TokenStore answers the admission check for a caller's opaque token.
// Issuance and expiry of tokens happen elsewhere.
type TokenStore interface {
	IsActive(ctx context.Context, tokenID string) (bool, error)
}

// EventPublisher is an at-least-once sink into the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}
