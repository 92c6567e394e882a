package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"concert-ticketing/internal/adapter/handler"
	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/ports/mocks"
	"concert-ticketing/internal/core/services"
)

func newPaymentHandler(t *testing.T, setup func(reservations *mocks.ReservationRepository, customers *mocks.CustomerRepository, seats *mocks.SeatRepository, payments *mocks.PaymentRepository, outbox *mocks.OutboxRepository)) *handler.PaymentHandler {
	reservationRepo := mocks.NewReservationRepository(t)
	customerRepo := mocks.NewCustomerRepository(t)
	seatRepo := mocks.NewSeatRepository(t)
	paymentRepo := mocks.NewPaymentRepository(t)
	outboxRepo := mocks.NewOutboxRepository(t)

	tx := mocks.NewTransactor(t)
	tx.On("WithinTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()

	setup(reservationRepo, customerRepo, seatRepo, paymentRepo, outboxRepo)

	svc := services.NewPaymentService(reservationRepo, customerRepo, seatRepo, paymentRepo, outboxRepo, tx, zap.NewNop())
	return handler.NewPaymentHandler(svc, zap.NewNop())
}

func TestProcessPayment_NotPendingConflict(t *testing.T) {
	reservationID := uuid.New()

	h := newPaymentHandler(t, func(reservations *mocks.ReservationRepository, _ *mocks.CustomerRepository, _ *mocks.SeatRepository, _ *mocks.PaymentRepository, _ *mocks.OutboxRepository) {
		reservations.On("GetByIDForUpdate", mock.Anything, reservationID).
			Return(&domain.Reservation{ID: reservationID, Status: domain.ReservationCancelled}, nil)
	})

	body := strings.NewReader(`{"reservation_id":"` + reservationID.String() + `","amount":7000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", body)
	rec := httptest.NewRecorder()

	h.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "not pending")
}

func TestProcessPayment_InsufficientPointsPaymentRequired(t *testing.T) {
	reservationID := uuid.New()
	customerID := uuid.New()

	h := newPaymentHandler(t, func(reservations *mocks.ReservationRepository, customers *mocks.CustomerRepository, _ *mocks.SeatRepository, _ *mocks.PaymentRepository, _ *mocks.OutboxRepository) {
		reservations.On("GetByIDForUpdate", mock.Anything, reservationID).
			Return(&domain.Reservation{ID: reservationID, CustomerID: customerID, Status: domain.ReservationPending}, nil)
		customers.On("GetByIDForUpdate", mock.Anything, customerID).
			Return(&domain.Customer{ID: customerID, Points: 100}, nil)
	})

	body := strings.NewReader(`{"reservation_id":"` + reservationID.String() + `","amount":7000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", body)
	rec := httptest.NewRecorder()

	h.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestProcessPayment_UnknownReservationNotFound(t *testing.T) {
	reservationID := uuid.New()

	h := newPaymentHandler(t, func(reservations *mocks.ReservationRepository, _ *mocks.CustomerRepository, _ *mocks.SeatRepository, _ *mocks.PaymentRepository, _ *mocks.OutboxRepository) {
		reservations.On("GetByIDForUpdate", mock.Anything, reservationID).
			Return(nil, domain.ErrNotFound)
	})

	body := strings.NewReader(`{"reservation_id":"` + reservationID.String() + `","amount":7000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", body)
	rec := httptest.NewRecorder()

	h.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProcessPayment_RejectsNonPositiveAmount(t *testing.T) {
	h := newPaymentHandler(t, func(*mocks.ReservationRepository, *mocks.CustomerRepository, *mocks.SeatRepository, *mocks.PaymentRepository, *mocks.OutboxRepository) {})

	body := strings.NewReader(`{"reservation_id":"` + uuid.New().String() + `","amount":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", body)
	rec := httptest.NewRecorder()

	h.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
