package producer

import (
	"context"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultBatchSize = 50

// Worker drains the outbox table into kafka. Failed publishes are left
// for the next tick; the repository schedules their retry backoff.
type Worker struct {
	repo         kafka.OutboxRepository
	writer       *kafkago.Writer
	logger       *zap.Logger
	pollInterval time.Duration
	batchSize    int
}

func NewWorker(repo kafka.OutboxRepository, writer *kafkago.Writer, logger *zap.Logger, pollInterval time.Duration) *Worker {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	return &Worker{
		repo:         repo,
		writer:       writer,
		logger:       logger.Named("kafka.producer.worker"),
		pollInterval: pollInterval,
		batchSize:    defaultBatchSize,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started", zap.Duration("poll_interval", w.pollInterval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := w.drainOnce(ctx); err != nil {
				w.logger.Error("outbox drain failed", zap.Error(err))
			}
		}
	}
}

func (w *Worker) drainOnce(ctx context.Context) error {
	events, err := w.repo.ListPending(ctx, w.batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	w.logger.Info("draining outbox", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, w.writer, event); err != nil {
			w.logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = w.repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := w.repo.MarkSent(ctx, event.ID); err != nil {
			w.logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		w.logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
