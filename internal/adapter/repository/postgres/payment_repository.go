package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"concert-ticketing/internal/core/domain"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
	INSERT INTO payments (id, reservation_id, customer_id, amount, paid_at)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := queryer(ctx, r.db).ExecContext(ctx, query,
		payment.ID,
		payment.ReservationID,
		payment.CustomerID,
		payment.Amount,
		payment.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	query := `
	SELECT id, reservation_id, customer_id, amount, paid_at, created_at, updated_at
	FROM payments
	WHERE id = $1
	`

	var payment domain.Payment
	err := queryer(ctx, r.db).QueryRowContext(ctx, query, paymentID).Scan(
		&payment.ID,
		&payment.ReservationID,
		&payment.CustomerID,
		&payment.Amount,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment", domain.ErrNotFound)
		}
		return nil, err
	}
	return &payment, nil
}
