package domain

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID
	Name      string
	Points    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Debit subtracts amount from the customer's point balance. The balance
// never goes negative.
func (c *Customer) Debit(amount int64) error {
	if c.Points < amount {
		return ErrInsufficientPoints
	}
	c.Points -= amount
	return nil
}
