package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

type Reservation struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	SeatID     uuid.UUID
	ScheduleID uuid.UUID
	ReservedAt time.Time
	Status     ReservationStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
