package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"concert-ticketing/internal/core/ports"
)

// OutboxRelay drains committed payment-completed events into the message
// bus. Delivery is at-least-once: a crash between publish and MarkSent
// redelivers the event on the next pass.
type OutboxRelay struct {
	outbox     ports.OutboxRepository
	publisher  ports.EventPublisher
	interval   time.Duration
	batchSize  int
	maxRetries int
	log        *zap.Logger
}

func NewOutboxRelay(outbox ports.OutboxRepository, publisher ports.EventPublisher, interval time.Duration, batchSize, maxRetries int, log *zap.Logger) *OutboxRelay {
	return &OutboxRelay{
		outbox:     outbox,
		publisher:  publisher,
		interval:   interval,
		batchSize:  batchSize,
		maxRetries: maxRetries,
		log:        log,
	}
}

// Run relays on a fixed interval until the context is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("outbox relay started",
		zap.Duration("interval", r.interval),
		zap.Int("max_retries", r.maxRetries))

	for {
		select {
		case <-ctx.Done():
			r.log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if err := r.Relay(ctx); err != nil {
				r.log.Error("outbox relay pass failed", zap.Error(err))
			}
		}
	}
}

// Relay publishes one batch of INIT records. A record that has already
// used up its retries is marked FAILED and left for manual attention; a
// publish failure increments the retry count and leaves the record INIT
// for a later pass.
func (r *OutboxRelay) Relay(ctx context.Context) error {
	records, err := r.outbox.FindPending(ctx, r.batchSize)
	if err != nil {
		return err
	}

	for _, record := range records {
		if record.RetryCount >= r.maxRetries {
			if err := r.outbox.MarkFailed(ctx, record.ID); err != nil {
				r.log.Error("failed to mark outbox record failed",
					zap.String("outbox_id", record.ID.String()), zap.Error(err))
				continue
			}
			r.log.Warn("outbox record exhausted retries",
				zap.String("outbox_id", record.ID.String()),
				zap.String("payment_id", record.PaymentID.String()),
				zap.Int("retry_count", record.RetryCount))
			continue
		}

		if err := r.publisher.Publish(ctx, record.PaymentID.String(), record.Payload); err != nil {
			r.log.Warn("outbox publish failed",
				zap.String("outbox_id", record.ID.String()),
				zap.Int("retry_count", record.RetryCount),
				zap.Error(err))
			if err := r.outbox.IncrementRetry(ctx, record.ID); err != nil {
				r.log.Error("failed to increment outbox retry count",
					zap.String("outbox_id", record.ID.String()), zap.Error(err))
			}
			continue
		}

		if err := r.outbox.MarkSent(ctx, record.ID); err != nil {
			// The event went out but the row stays INIT; the next pass
			// republishes it, which consumers must tolerate.
			r.log.Error("failed to mark outbox record sent",
				zap.String("outbox_id", record.ID.String()), zap.Error(err))
		}
	}
	return nil
}
