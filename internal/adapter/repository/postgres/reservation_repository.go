package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"concert-ticketing/internal/core/domain"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationColumns = `id, customer_id, seat_id, schedule_id, reserved_at, status, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	query := `
	INSERT INTO reservations (id, customer_id, seat_id, schedule_id, reserved_at, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := queryer(ctx, r.db).ExecContext(ctx, query,
		reservation.ID,
		reservation.CustomerID,
		reservation.SeatID,
		reservation.ScheduleID,
		reservation.ReservedAt,
		reservation.Status,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return scanReservation(queryer(ctx, r.db).QueryRowContext(ctx, query, reservationID))
}

func (r *ReservationRepository) GetByIDForUpdate(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	return scanReservation(queryer(ctx, r.db).QueryRowContext(ctx, query, reservationID))
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status domain.ReservationStatus) error {
	query := `UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := queryer(ctx, r.db).ExecContext(ctx, query, status, reservationID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: reservation %s", domain.ErrNotFound, reservationID)
	}
	return nil
}

func (r *ReservationRepository) FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.Reservation, error) {
	query := `
	SELECT r.id, r.customer_id, r.seat_id, r.schedule_id, r.reserved_at, r.status, r.created_at, r.updated_at
	FROM reservations r
	JOIN seats s ON s.id = r.seat_id
	WHERE r.status = $1
	  AND s.finally_reserved = false
	  AND s.temp_assign_expires_at IS NOT NULL
	  AND s.temp_assign_expires_at < $2
	ORDER BY r.reserved_at
	LIMIT $3
	`

	rows, err := queryer(ctx, r.db).QueryContext(ctx, query, domain.ReservationPending, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID,
			&res.CustomerID,
			&res.SeatID,
			&res.ScheduleID,
			&res.ReservedAt,
			&res.Status,
			&res.CreatedAt,
			&res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID,
		&res.CustomerID,
		&res.SeatID,
		&res.ScheduleID,
		&res.ReservedAt,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: reservation", domain.ErrNotFound)
		}
		return nil, err
	}
	return &res, nil
}
