package producer

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-payroll-go/internal/messaging/kafka"
)

const defaultBatchSize = 50

// Relay moves pending outbox events to Kafka. Failed events are retried with
// backoff by the repository's MarkFailed.
type Relay struct {
	repo      kafka.OutboxRepository
	writer    MessageWriter
	batchSize int
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, batchSize int) *Relay {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Relay{repo: repo, writer: writer, batchSize: batchSize}
}

// ProcessPending publishes one batch and returns how many events were sent.
// A failed publish marks that event and moves on to the next.
func (r *Relay) ProcessPending(ctx context.Context) (int, error) {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	slog.Info("processing pending outbox events", "count", len(events))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, r.writer, event); err != nil {
			slog.Error("publish outbox event failed",
				"outbox_id", event.ID,
				"event_type", event.EventType,
				"topic", event.Topic,
				"error", err,
			)
			if markErr := r.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				slog.Error("mark outbox failed failed", "outbox_id", event.ID, "error", markErr)
			}
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			slog.Error("mark outbox sent failed",
				"outbox_id", event.ID,
				"error", err,
			)
			continue
		}

		sent++
		slog.Debug("outbox event sent",
			"outbox_id", event.ID,
			"event_type", event.EventType,
			"topic", event.Topic,
		)
	}

	return sent, nil
}
