package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"concert-ticketing/internal/adapter/handler"
	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/ports/mocks"
	"concert-ticketing/internal/core/services"
)

type stubCreator struct {
	reservation *domain.Reservation
	err         error
}

func (s *stubCreator) CreateReservation(context.Context, uuid.UUID, uuid.UUID) (*domain.Reservation, error) {
	return s.reservation, s.err
}

func createReservationBody(seatID, customerID uuid.UUID) *strings.Reader {
	return strings.NewReader(`{"seat_id":"` + seatID.String() + `","customer_id":"` + customerID.String() + `"}`)
}

func TestCreateReservation_Created(t *testing.T) {
	seatID := uuid.New()
	customerID := uuid.New()
	reservation := &domain.Reservation{
		ID:         uuid.New(),
		SeatID:     seatID,
		ScheduleID: uuid.New(),
		CustomerID: customerID,
		Status:     domain.ReservationPending,
		ReservedAt: time.Now(),
	}

	h := handler.NewReservationHandler(&stubCreator{reservation: reservation}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", createReservationBody(seatID, customerID))
	rec := httptest.NewRecorder()

	h.CreateReservation(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), reservation.ID.String())
	assert.Contains(t, rec.Body.String(), "PENDING")
}

func TestCreateReservation_SeatUnavailableConflict(t *testing.T) {
	h := handler.NewReservationHandler(&stubCreator{err: domain.ErrSeatUnavailable}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", createReservationBody(uuid.New(), uuid.New()))
	rec := httptest.NewRecorder()

	h.CreateReservation(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "seat unavailable")
}

func TestCreateReservation_ConcurrentConflict(t *testing.T) {
	h := handler.NewReservationHandler(&stubCreator{err: domain.ErrConcurrentModification}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", createReservationBody(uuid.New(), uuid.New()))
	rec := httptest.NewRecorder()

	h.CreateReservation(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "try again")
}

func TestCreateReservation_BadBody(t *testing.T) {
	h := handler.NewReservationHandler(&stubCreator{}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(`{"seat_id":"not-a-uuid"}`))
	rec := httptest.NewRecorder()

	h.CreateReservation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailableSeats_ReturnsSeatList(t *testing.T) {
	seatRepo := mocks.NewSeatRepository(t)
	scheduleID := uuid.New()
	seatRepo.On("FindAvailableBySchedule", mock.Anything, scheduleID, mock.AnythingOfType("time.Time")).
		Return([]domain.Seat{{ID: uuid.New(), ScheduleID: scheduleID, SeatNumber: 12, Price: 7000}}, nil)

	query := services.NewSeatQueryService(seatRepo, nil, zap.NewNop())
	h := handler.NewReservationHandler(&stubCreator{}, query, zap.NewNop())

	router := chi.NewRouter()
	router.Get("/schedules/{scheduleID}/seats", h.AvailableSeats)

	req := httptest.NewRequest(http.MethodGet, "/schedules/"+scheduleID.String()+"/seats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"seat_number":12`)
}

func TestAvailableSeats_InvalidScheduleID(t *testing.T) {
	h := handler.NewReservationHandler(&stubCreator{}, nil, zap.NewNop())

	router := chi.NewRouter()
	router.Get("/schedules/{scheduleID}/seats", h.AvailableSeats)

	req := httptest.NewRequest(http.MethodGet, "/schedules/nope/seats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
