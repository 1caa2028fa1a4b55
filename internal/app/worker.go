package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/employee"
	"github.com/Marllon-hub/hospital-plataforma/internal/message"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka/producer"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/connection"

	"go.uber.org/zap"
)

const messagePurgeInterval = 1 * time.Hour

// RunWorker starts the background process: the outbox drain loop that
// feeds kafka, and the hourly purge of expired direct messages.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	employeeRepo := employee.NewRepository(gormDB)
	messageRepo := message.NewRepository(gormDB)
	messageService := message.NewService(messageRepo, employee.NewDirectory(employeeRepo))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outboxWorker := producer.NewWorker(outboxRepo, kafkaWriter, logger, 3*time.Second)
	go outboxWorker.Run(ctx)
	go purgeExpiredMessages(ctx, messageService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func purgeExpiredMessages(ctx context.Context, svc message.Service, logger *zap.Logger) {
	log := logger.Named("message_purge")
	ticker := time.NewTicker(messagePurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("message purge stopped")
			return
		case <-ticker.C:
			removed, err := svc.PurgeExpired(ctx)
			if err != nil {
				log.Error("purge expired messages failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				log.Info("expired messages purged", zap.Int64("removed", removed))
			}
		}
	}
}
