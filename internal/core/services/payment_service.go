package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/ports"
)

// PaymentService finalizes a pending reservation: debit, seat completion,
// reservation completion, payment row and outbox row commit together or
// not at all.
type PaymentService struct {
	reservations ports.ReservationRepository
	customers    ports.CustomerRepository
	seats        ports.SeatRepository
	payments     ports.PaymentRepository
	outbox       ports.OutboxRepository
	tx           ports.Transactor
	clock        func() time.Time
	log          *zap.Logger
}

func NewPaymentService(
	reservations ports.ReservationRepository,
	customers ports.CustomerRepository,
	seats ports.SeatRepository,
	payments ports.PaymentRepository,
	outbox ports.OutboxRepository,
	tx ports.Transactor,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		reservations: reservations,
		customers:    customers,
		seats:        seats,
		payments:     payments,
		outbox:       outbox,
		tx:           tx,
		clock:        time.Now,
		log:          log,
	}
}

// ProcessPayment executes the atomic finalize-and-enqueue transaction for
// a PENDING reservation. The reservation row is read under an exclusive
// lock so a concurrent second attempt observes COMPLETED and fails with
// domain.ErrReservationNotPending; the customer row lock serializes
// debits against one balance.
func (s *PaymentService) ProcessPayment(ctx context.Context, reservationID uuid.UUID, amount int64) (*domain.Payment, error) {
	var payment *domain.Payment

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		reservation, err := s.reservations.GetByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}
		if reservation.Status != domain.ReservationPending {
			return fmt.Errorf("%w: reservation %s is %s", domain.ErrReservationNotPending, reservation.ID, reservation.Status)
		}

		customer, err := s.customers.GetByIDForUpdate(ctx, reservation.CustomerID)
		if err != nil {
			return err
		}
		if err := customer.Debit(amount); err != nil {
			return err
		}
		if err := s.customers.UpdatePoints(ctx, customer.ID, customer.Points); err != nil {
			return err
		}

		seat, err := s.seats.GetByID(ctx, reservation.SeatID)
		if err != nil {
			return err
		}
		seat.Complete()
		if err := s.seats.Update(ctx, seat); err != nil {
			return err
		}

		if err := s.reservations.UpdateStatus(ctx, reservation.ID, domain.ReservationCompleted); err != nil {
			return err
		}

		now := s.clock()
		payment = &domain.Payment{
			ID:            uuid.New(),
			ReservationID: reservation.ID,
			CustomerID:    customer.ID,
			Amount:        amount,
			PaidAt:        now,
		}
		if err := s.payments.Create(ctx, payment); err != nil {
			return err
		}

		payload, err := json.Marshal(domain.PaymentCompletedEvent{
			PaymentID:     payment.ID,
			ReservationID: reservation.ID,
			CustomerID:    customer.ID,
			SeatID:        seat.ID,
			ScheduleID:    seat.ScheduleID,
			Amount:        amount,
			PaidAt:        now,
		})
		if err != nil {
			return fmt.Errorf("encode payment event: %w", err)
		}

		return s.outbox.Create(ctx, &domain.PaymentOutbox{
			ID:        uuid.New(),
			PaymentID: payment.ID,
			Payload:   payload,
			Status:    domain.OutboxInit,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payment processed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("reservation_id", reservationID.String()),
		zap.Int64("amount", amount))

	return payment, nil
}
