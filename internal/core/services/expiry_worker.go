package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/ports"
)

// ExpiryWorker sweeps reservations whose seat hold lapsed without payment.
// Abandoned seats come back on their own; no customer action is needed.
type ExpiryWorker struct {
	reservations ports.ReservationRepository
	seats        ports.SeatRepository
	tx           ports.Transactor
	interval     time.Duration
	batchSize    int
	clock        func() time.Time
	log          *zap.Logger
}

func NewExpiryWorker(reservations ports.ReservationRepository, seats ports.SeatRepository, tx ports.Transactor, interval time.Duration, batchSize int, log *zap.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		reservations: reservations,
		seats:        seats,
		tx:           tx,
		interval:     interval,
		batchSize:    batchSize,
		clock:        time.Now,
		log:          log,
	}
}

// Run sweeps on a fixed interval until the context is cancelled.
func (w *ExpiryWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("expiry worker started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("expiry worker stopped")
			return
		case <-ticker.C:
			if err := w.CancelExpired(ctx); err != nil {
				w.log.Error("expiry sweep failed", zap.Error(err))
			}
		}
	}
}

// CancelExpired cancels every PENDING reservation whose seat hold has
// expired, clearing the seat's hold fields. Each reservation is handled
// in its own transaction so a crash mid-sweep leaves only fully processed
// rows changed.
func (w *ExpiryWorker) CancelExpired(ctx context.Context) error {
	expired, err := w.reservations.FindExpiredPending(ctx, w.clock(), w.batchSize)
	if err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	w.log.Info("cancelling expired reservations", zap.Int("count", len(expired)))

	for _, reservation := range expired {
		if err := w.cancelOne(ctx, reservation); err != nil {
			w.log.Error("failed to cancel expired reservation",
				zap.String("reservation_id", reservation.ID.String()),
				zap.Error(err))
		}
	}
	return nil
}

func (w *ExpiryWorker) cancelOne(ctx context.Context, reservation domain.Reservation) error {
	return w.tx.WithinTx(ctx, func(ctx context.Context) error {
		seat, err := w.seats.GetByIDForUpdate(ctx, reservation.SeatID)
		if err != nil {
			return err
		}

		// The seat may have been paid for, or its hold re-validated,
		// between the scan and this lock. Re-check before touching it.
		if seat.FinallyReserved || seat.HoldValid(w.clock()) {
			return nil
		}

		seat.ReleaseHold()
		if err := w.seats.Update(ctx, seat); err != nil {
			return err
		}

		return w.reservations.UpdateStatus(ctx, reservation.ID, domain.ReservationCancelled)
	})
}
