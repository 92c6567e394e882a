package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/ports"
)

// ReservationCreator turns a free seat into a PENDING reservation held by
// one customer. Implementations differ only in how they serialize
// concurrent attempts on the same seat; pre- and postconditions are
// identical.
type ReservationCreator interface {
	CreateReservation(ctx context.Context, seatID, customerID uuid.UUID) (*domain.Reservation, error)
}

// OptimisticReservation detects conflicts with the seat's version counter
// at commit time. Losers get domain.ErrConcurrentModification and are not
// retried here.
type OptimisticReservation struct {
	seats        ports.SeatRepository
	reservations ports.ReservationRepository
	tx           ports.Transactor
	cache        *redis.Client
	clock        func() time.Time
	log          *zap.Logger
}

func NewOptimisticReservation(seats ports.SeatRepository, reservations ports.ReservationRepository, tx ports.Transactor, cache *redis.Client, log *zap.Logger) *OptimisticReservation {
	return &OptimisticReservation{
		seats:        seats,
		reservations: reservations,
		tx:           tx,
		cache:        cache,
		clock:        time.Now,
		log:          log,
	}
}

func (s *OptimisticReservation) CreateReservation(ctx context.Context, seatID, customerID uuid.UUID) (*domain.Reservation, error) {
	var reservation *domain.Reservation
	var scheduleID uuid.UUID

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		seat, err := s.seats.GetByID(ctx, seatID)
		if err != nil {
			return err
		}

		now := s.clock()
		if err := seat.Hold(customerID, now); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrSeatUnavailable, err)
		}

		if err := s.seats.UpdateVersioned(ctx, seat, seat.Version); err != nil {
			return err
		}

		scheduleID = seat.ScheduleID
		reservation = newPendingReservation(seat, customerID, now)
		return s.reservations.Create(ctx, reservation)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			s.log.Debug("optimistic reservation lost version race",
				zap.String("seat_id", seatID.String()),
				zap.String("customer_id", customerID.String()))
		}
		return nil, err
	}

	invalidateSeatCache(ctx, s.cache, scheduleID, s.log)
	return reservation, nil
}

// PessimisticReservation takes an exclusive row lock on the seat before
// evaluating the hold, so competitors block until the winner commits and
// then observe the now-held seat as a plain business rejection.
type PessimisticReservation struct {
	seats        ports.SeatRepository
	reservations ports.ReservationRepository
	tx           ports.Transactor
	cache        *redis.Client
	clock        func() time.Time
	log          *zap.Logger
}

func NewPessimisticReservation(seats ports.SeatRepository, reservations ports.ReservationRepository, tx ports.Transactor, cache *redis.Client, log *zap.Logger) *PessimisticReservation {
	return &PessimisticReservation{
		seats:        seats,
		reservations: reservations,
		tx:           tx,
		cache:        cache,
		clock:        time.Now,
		log:          log,
	}
}

func (s *PessimisticReservation) CreateReservation(ctx context.Context, seatID, customerID uuid.UUID) (*domain.Reservation, error) {
	var reservation *domain.Reservation
	var scheduleID uuid.UUID

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		seat, err := s.seats.GetByIDForUpdate(ctx, seatID)
		if err != nil {
			return err
		}

		now := s.clock()
		if err := seat.Hold(customerID, now); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrSeatUnavailable, err)
		}

		if err := s.seats.Update(ctx, seat); err != nil {
			return err
		}

		scheduleID = seat.ScheduleID
		reservation = newPendingReservation(seat, customerID, now)
		return s.reservations.Create(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	invalidateSeatCache(ctx, s.cache, scheduleID, s.log)
	return reservation, nil
}

func newPendingReservation(seat *domain.Seat, customerID uuid.UUID, now time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:         uuid.New(),
		CustomerID: customerID,
		SeatID:     seat.ID,
		ScheduleID: seat.ScheduleID,
		ReservedAt: now,
		Status:     domain.ReservationPending,
	}
}

func invalidateSeatCache(ctx context.Context, cache *redis.Client, scheduleID uuid.UUID, log *zap.Logger) {
	if cache == nil {
		return
	}
	key := seatCacheKey(scheduleID)
	if err := cache.Del(ctx, key).Err(); err != nil {
		// Stale cache entries age out via TTL; a failed invalidation is
		// not worth failing the reservation over.
		log.Warn("seat cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
