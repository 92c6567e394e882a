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

type SeatRepository struct {
	db *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

const seatColumns = `id, schedule_id, seat_number, price, finally_reserved, temp_assignee_id, temp_assign_expires_at, version, created_at, updated_at`

func (r *SeatRepository) GetByID(ctx context.Context, seatID uuid.UUID) (*domain.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = $1`
	return r.scanSeat(queryer(ctx, r.db).QueryRowContext(ctx, query, seatID))
}

func (r *SeatRepository) GetByIDForUpdate(ctx context.Context, seatID uuid.UUID) (*domain.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = $1 FOR UPDATE`
	return r.scanSeat(queryer(ctx, r.db).QueryRowContext(ctx, query, seatID))
}

func (r *SeatRepository) FindAvailableBySchedule(ctx context.Context, scheduleID uuid.UUID, now time.Time) ([]domain.Seat, error) {
	query := `
	SELECT ` + seatColumns + `
	FROM seats
	WHERE schedule_id = $1
	  AND finally_reserved = false
	  AND (temp_assign_expires_at IS NULL OR temp_assign_expires_at <= $2)
	ORDER BY seat_number
	`

	rows, err := queryer(ctx, r.db).QueryContext(ctx, query, scheduleID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		seat, err := scanSeatRow(rows)
		if err != nil {
			return nil, err
		}
		seats = append(seats, *seat)
	}
	return seats, rows.Err()
}

func (r *SeatRepository) Update(ctx context.Context, seat *domain.Seat) error {
	query := `
	UPDATE seats
	SET finally_reserved = $1,
		temp_assignee_id = $2,
		temp_assign_expires_at = $3,
		version = version + 1,
		updated_at = NOW()
	WHERE id = $4
	`

	result, err := queryer(ctx, r.db).ExecContext(ctx, query,
		seat.FinallyReserved, seat.TempAssigneeID, seat.TempAssignExpiresAt, seat.ID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: seat %s", domain.ErrNotFound, seat.ID)
	}
	return nil
}

func (r *SeatRepository) UpdateVersioned(ctx context.Context, seat *domain.Seat, expectedVersion int) error {
	query := `
	UPDATE seats
	SET finally_reserved = $1,
		temp_assignee_id = $2,
		temp_assign_expires_at = $3,
		version = version + 1,
		updated_at = NOW()
	WHERE id = $4 AND version = $5
	`

	result, err := queryer(ctx, r.db).ExecContext(ctx, query,
		seat.FinallyReserved, seat.TempAssigneeID, seat.TempAssignExpiresAt, seat.ID, expectedVersion)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the version moved or the seat is gone; both mean the
		// caller's view of the row is stale.
		return fmt.Errorf("%w: seat %s at version %d", domain.ErrConcurrentModification, seat.ID, expectedVersion)
	}
	return nil
}

func (r *SeatRepository) scanSeat(row *sql.Row) (*domain.Seat, error) {
	var seat domain.Seat
	var assignee sql.NullString
	var expiresAt sql.NullTime

	err := row.Scan(
		&seat.ID,
		&seat.ScheduleID,
		&seat.SeatNumber,
		&seat.Price,
		&seat.FinallyReserved,
		&assignee,
		&expiresAt,
		&seat.Version,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: seat", domain.ErrNotFound)
		}
		return nil, err
	}

	applySeatNullables(&seat, assignee, expiresAt)
	return &seat, nil
}

func scanSeatRow(rows *sql.Rows) (*domain.Seat, error) {
	var seat domain.Seat
	var assignee sql.NullString
	var expiresAt sql.NullTime

	err := rows.Scan(
		&seat.ID,
		&seat.ScheduleID,
		&seat.SeatNumber,
		&seat.Price,
		&seat.FinallyReserved,
		&assignee,
		&expiresAt,
		&seat.Version,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	applySeatNullables(&seat, assignee, expiresAt)
	return &seat, nil
}

func applySeatNullables(seat *domain.Seat, assignee sql.NullString, expiresAt sql.NullTime) {
	if assignee.Valid && assignee.String != "" {
		if uid, err := uuid.Parse(assignee.String); err == nil {
			seat.TempAssigneeID = &uid
		}
	}
	if expiresAt.Valid {
		seat.TempAssignExpiresAt = &expiresAt.Time
	}
}
