package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"concert-ticketing/internal/core/domain"
)

type OutboxRepository struct {
	db *sql.DB
}

func NewOutboxRepository(db *sql.DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Create(ctx context.Context, record *domain.PaymentOutbox) error {
	query := `
	INSERT INTO payment_outbox (id, payment_id, payload, status, retry_count)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := queryer(ctx, r.db).ExecContext(ctx, query,
		record.ID,
		record.PaymentID,
		record.Payload,
		record.Status,
		record.RetryCount,
	)
	if err != nil {
		return fmt.Errorf("insert outbox record: %w", err)
	}
	return nil
}

func (r *OutboxRepository) FindPending(ctx context.Context, limit int) ([]domain.PaymentOutbox, error) {
	query := `
	SELECT id, payment_id, payload, status, retry_count, created_at, updated_at
	FROM payment_outbox
	WHERE status = $1
	ORDER BY created_at
	LIMIT $2
	`

	rows, err := queryer(ctx, r.db).QueryContext(ctx, query, domain.OutboxInit, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.PaymentOutbox
	for rows.Next() {
		var record domain.PaymentOutbox
		if err := rows.Scan(
			&record.ID,
			&record.PaymentID,
			&record.Payload,
			&record.Status,
			&record.RetryCount,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *OutboxRepository) MarkSent(ctx context.Context, outboxID uuid.UUID) error {
	return r.setStatus(ctx, outboxID, domain.OutboxSent)
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, outboxID uuid.UUID) error {
	return r.setStatus(ctx, outboxID, domain.OutboxFailed)
}

func (r *OutboxRepository) IncrementRetry(ctx context.Context, outboxID uuid.UUID) error {
	query := `UPDATE payment_outbox SET retry_count = retry_count + 1, updated_at = NOW() WHERE id = $1`
	_, err := queryer(ctx, r.db).ExecContext(ctx, query, outboxID)
	return err
}

func (r *OutboxRepository) setStatus(ctx context.Context, outboxID uuid.UUID, status domain.OutboxStatus) error {
	query := `UPDATE payment_outbox SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := queryer(ctx, r.db).ExecContext(ctx, query, status, outboxID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: outbox record %s", domain.ErrNotFound, outboxID)
	}
	return nil
}
