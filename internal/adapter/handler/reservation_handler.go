package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/services"
)

type CreateReservationRequest struct {
	SeatID     string `json:"seat_id"`
	CustomerID string `json:"customer_id"`
}

type ReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	SeatID        string `json:"seat_id"`
	ScheduleID    string `json:"schedule_id"`
	Status        string `json:"status"`
	ReservedAt    string `json:"reserved_at"`
}

type SeatResponse struct {
	SeatID     string `json:"seat_id"`
	SeatNumber int    `json:"seat_number"`
	Price      int64  `json:"price"`
}

type ReservationHandler struct {
	creator services.ReservationCreator
	seats   *services.SeatQueryService
	log     *zap.Logger
}

func NewReservationHandler(creator services.ReservationCreator, seats *services.SeatQueryService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{creator: creator, seats: seats, log: log}
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	seatID, err := uuid.Parse(req.SeatID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid seat id")
		return
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	reservation, err := h.creator.CreateReservation(r.Context(), seatID, customerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatUnavailable):
			writeError(w, http.StatusConflict, "seat unavailable")
		case errors.Is(err, domain.ErrConcurrentModification):
			writeError(w, http.StatusConflict, "seat was taken concurrently, try again")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "seat not found")
		default:
			h.log.Error("create reservation failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, ReservationResponse{
		ReservationID: reservation.ID.String(),
		SeatID:        reservation.SeatID.String(),
		ScheduleID:    reservation.ScheduleID.String(),
		Status:        string(reservation.Status),
		ReservedAt:    reservation.ReservedAt.Format(time.RFC3339),
	})
}

func (h *ReservationHandler) AvailableSeats(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := uuid.Parse(chi.URLParam(r, "scheduleID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid schedule id")
		return
	}

	seats, err := h.seats.AvailableSeats(r.Context(), scheduleID)
	if err != nil {
		h.log.Error("list available seats failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]SeatResponse, 0, len(seats))
	for _, seat := range seats {
		out = append(out, SeatResponse{
			SeatID:     seat.ID.String(),
			SeatNumber: seat.SeatNumber,
			Price:      seat.Price,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
