package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"concert-ticketing/internal/core/ports"
)

func NewRouter(reservations *ReservationHandler, payments *PaymentHandler, tokens ports.TokenStore, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(Admission(tokens, log))
		r.Post("/reservations", reservations.CreateReservation)
		r.Post("/payments", payments.ProcessPayment)
		r.Get("/schedules/{scheduleID}/seats", reservations.AvailableSeats)
	})

	return r
}
