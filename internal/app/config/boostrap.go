package config

import (
	"context"
	"errors"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop stops the completion worker before its dependencies close.
	WorkerStop func()
}

// Shutdown stops the worker and releases every client. A failing client does
// not keep the others open; all failures are returned together.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped completion worker")
	}

	var errs []error
	closeClient := func(name string, closeFn func() error) {
		if err := closeFn(); err != nil {
			log.Printf("Failed closing %s: %v", name, err)
			errs = append(errs, err)
			return
		}
		log.Printf("Successfully closing %s", name)
	}

	if b.Redis != nil {
		closeClient("Redis", b.Redis.Close)
	}
	if b.RabbitMQ != nil && !b.RabbitMQ.IsClosed() {
		closeClient("RabbitMQ", b.RabbitMQ.Close)
	}
	if b.MongoDB != nil {
		closeClient("MongoDB", func() error { return b.MongoDB.Disconnect(ctx) })
	}

	if b.Logger != nil {
		// Sync on stdout/stderr returns EINVAL on some platforms.
		_ = b.Logger.Sync()
	}

	return errors.Join(errs...)
}
