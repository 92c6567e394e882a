package domain

import (
	"time"

	"github.com/google/uuid"
)

// HoldDuration is how long a temporary seat assignment stays valid.
const HoldDuration = 5 * time.Minute

type Seat struct {
	ID                  uuid.UUID
	ScheduleID          uuid.UUID
	SeatNumber          int
	Price               int64
	FinallyReserved     bool
	TempAssigneeID      *uuid.UUID
	TempAssignExpiresAt *time.Time
	Version             int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HoldValid reports whether the seat carries a non-expired temporary
// assignment at the given instant. Expiry is evaluated at read time,
// never cached.
func (s *Seat) HoldValid(now time.Time) bool {
	return s.TempAssignExpiresAt != nil && now.Before(*s.TempAssignExpiresAt)
}

// Hold assigns the seat to a customer for HoldDuration. It fails when the
// seat is finally reserved or another valid hold exists. A holder cannot
// renew their own hold before it expires.
func (s *Seat) Hold(customerID uuid.UUID, now time.Time) error {
	if s.FinallyReserved || s.HoldValid(now) {
		return ErrSeatAlreadyHeld
	}

	expiresAt := now.Add(HoldDuration)
	s.TempAssigneeID = &customerID
	s.TempAssignExpiresAt = &expiresAt

	return nil
}

// ReleaseHold clears the temporary assignment. Releasing an unheld seat
// is a no-op.
func (s *Seat) ReleaseHold() {
	s.TempAssigneeID = nil
	s.TempAssignExpiresAt = nil
}

// Complete marks the seat as finally reserved, consuming any hold.
// Terminal.
func (s *Seat) Complete() {
	s.FinallyReserved = true
	s.TempAssigneeID = nil
	s.TempAssignExpiresAt = nil
}
