package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/services"
)

type ProcessPaymentRequest struct {
	ReservationID string `json:"reservation_id"`
	Amount        int64  `json:"amount"`
}

type PaymentResponse struct {
	PaymentID     string `json:"payment_id"`
	ReservationID string `json:"reservation_id"`
	Amount        int64  `json:"amount"`
	PaidAt        string `json:"paid_at"`
}

type PaymentHandler struct {
	svc *services.PaymentService
	log *zap.Logger
}

func NewPaymentHandler(svc *services.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: log}
}

func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	payment, err := h.svc.ProcessPayment(r.Context(), reservationID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotPending):
			writeError(w, http.StatusConflict, "reservation is not pending")
		case errors.Is(err, domain.ErrInsufficientPoints):
			writeError(w, http.StatusPaymentRequired, "insufficient points")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "not found")
		default:
			h.log.Error("process payment failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, PaymentResponse{
		PaymentID:     payment.ID.String(),
		ReservationID: payment.ReservationID.String(),
		Amount:        payment.Amount,
		PaidAt:        payment.PaidAt.Format(time.RFC3339),
	})
}
