package domain

import "errors"

var (
	// ErrSeatAlreadyHeld is the business rejection from the hold grant:
	// the seat carries a valid hold or is finally reserved.
	ErrSeatAlreadyHeld = errors.New("seat already held")

	// ErrSeatUnavailable is what reservation callers see when a seat
	// cannot be taken.
	ErrSeatUnavailable = errors.New("seat unavailable")

	// ErrConcurrentModification is an optimistic version race, distinct
	// from a business rejection so callers may choose to retry. The core
	// never retries it.
	ErrConcurrentModification = errors.New("concurrent modification")

	ErrReservationNotPending = errors.New("reservation is not pending")
	ErrInsufficientPoints    = errors.New("insufficient points")
	ErrNotFound              = errors.New("not found")
)
