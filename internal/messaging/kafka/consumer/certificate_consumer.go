package consumer

import (
	"context"
	"encoding/json"

	"github.com/Marllon-hub/hospital-plataforma/internal/course"
	"github.com/Marllon-hub/hospital-plataforma/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeCourseCompleted renders the certificate PDF for every
// completion announced on the course.completed topic. Messages that
// fail to decode are committed and skipped; render failures leave the
// message uncommitted so the broker redelivers it.
func ConsumeCourseCompleted(
	ctx context.Context,
	reader *kafkago.Reader,
	courseService course.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.certificate")
	log.Info("certificate consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("certificate consumer stopped")
				return
			}
			log.Error("fetch course completed message failed", zap.Error(err))
			continue
		}

		var event events.CourseCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode course completed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		path, err := courseService.RenderCertificate(ctx, event.CompletionID)
		if err != nil {
			log.Error("render certificate failed",
				zap.String("completion_id", event.CompletionID),
				zap.String("certificate_code", event.CertificateCode),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit course completed message failed", zap.Error(err))
			continue
		}

		log.Info("certificate generated",
			zap.String("completion_id", event.CompletionID),
			zap.String("certificate_code", event.CertificateCode),
			zap.String("path", path),
		)
	}
}
