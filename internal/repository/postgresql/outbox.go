package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/messaging/kafka"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
)

// maxOutboxBackoffSteps caps the retry delay at ten 15-second steps.
const maxOutboxBackoffSteps = 10

type outboxRepository struct {
	db *database.DB
}

func NewOutboxRepository(db *database.DB) kafka.OutboxRepository {
	return &outboxRepository{db: db}
}

// Create implements kafka.OutboxRepository. It joins the transaction in ctx
// so the event commits together with the state change.
func (r *outboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO outbox_events (
			id, company_id, aggregate_type, aggregate_id, event_type, topic, payload, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		event.ID, event.CompanyID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}
	return nil
}

// ListPending implements kafka.OutboxRepository. Failed events come back
// once their retry time has passed.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, company_id::text, aggregate_type, aggregate_id, event_type, topic, payload,
			status, retry_count, next_retry_at
		FROM outbox_events
		WHERE status IN ($1, $2) AND next_retry_at <= NOW()
		ORDER BY created_at ASC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, kafka.OutboxStatusPending, kafka.OutboxStatusFailed, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending outbox events: %w", err)
	}
	defer rows.Close()

	events := make([]kafka.OutboxEvent, 0, limit)
	for rows.Next() {
		var e kafka.OutboxEvent
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Topic, &e.Payload,
			&e.Status, &e.RetryCount, &e.NextRetryAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE outbox_events
		SET status = $2, sent_at = NOW(), last_error = NULL
		WHERE id = $1
	`
	_, err := q.Exec(ctx, query, id, kafka.OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE outbox_events
		SET status = $2,
			retry_count = retry_count + 1,
			last_error = LEFT($3, 500),
			next_retry_at = NOW() + (LEAST(retry_count + 1, $4) * INTERVAL '15 seconds')
		WHERE id = $1
	`
	_, err := q.Exec(ctx, query, id, kafka.OutboxStatusFailed, reason, maxOutboxBackoffSteps)
	return err
}
