package cron

import (
	"context"
	"time"
)

// OutboxProcessor publishes one batch of pending outbox events.
type OutboxProcessor interface {
	ProcessPending(ctx context.Context) (int, error)
}

type OutboxJobs struct {
	processor OutboxProcessor
	interval  time.Duration
}

func NewOutboxJobs(processor OutboxProcessor, interval time.Duration) *OutboxJobs {
	return &OutboxJobs{processor: processor, interval: interval}
}

func (j *OutboxJobs) RegisterJobs(scheduler *Scheduler) error {
	return scheduler.AddJob(Job{
		Name:     "relay_outbox_events",
		Interval: j.interval,
		Fn:       j.RelayOutbox,
	})
}

// RelayOutbox drains full batches until a short one comes back.
func (j *OutboxJobs) RelayOutbox(ctx context.Context) error {
	for {
		sent, err := j.processor.ProcessPending(ctx)
		if err != nil {
			return err
		}
		if sent == 0 || ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
