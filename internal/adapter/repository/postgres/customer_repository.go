package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"concert-ticketing/internal/core/domain"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	query := `SELECT id, name, points, created_at, updated_at FROM customers WHERE id = $1`
	return scanCustomer(queryer(ctx, r.db).QueryRowContext(ctx, query, customerID))
}

func (r *CustomerRepository) GetByIDForUpdate(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	query := `SELECT id, name, points, created_at, updated_at FROM customers WHERE id = $1 FOR UPDATE`
	return scanCustomer(queryer(ctx, r.db).QueryRowContext(ctx, query, customerID))
}

func (r *CustomerRepository) UpdatePoints(ctx context.Context, customerID uuid.UUID, points int64) error {
	query := `UPDATE customers SET points = $1, updated_at = NOW() WHERE id = $2`

	result, err := queryer(ctx, r.db).ExecContext(ctx, query, points, customerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: customer %s", domain.ErrNotFound, customerID)
	}
	return nil
}

func scanCustomer(row *sql.Row) (*domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Points,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer", domain.ErrNotFound)
		}
		return nil, err
	}
	return &customer, nil
}
