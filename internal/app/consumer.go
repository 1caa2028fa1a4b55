package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Marllon-hub/hospital-plataforma/internal/course"
	"github.com/Marllon-hub/hospital-plataforma/internal/employee"
	"github.com/Marllon-hub/hospital-plataforma/internal/events"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka/consumer"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/connection"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer starts the certificate consumer: it renders a PDF for
// every course completion announced on the bus.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

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

	employeeRepo := employee.NewRepository(gormDB)
	courseRepo := course.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	courseService := course.NewService(gormDB, courseRepo, counterRepo, employee.NewDirectory(employeeRepo), outboxRepo)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.TopicCourseCompleted,
		GroupID:        "hospital-certificates",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeCourseCompleted(ctx, reader, courseService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
