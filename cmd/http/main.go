package main

import (
	"appointment-service/internal/app/config"
	"appointment-service/internal/app/delivery/http/controllers"
	"appointment-service/internal/app/delivery/http/middlewares"
	"appointment-service/internal/app/delivery/http/routers"
	"appointment-service/internal/app/drivers/database"
	"appointment-service/internal/app/drivers/logger"
	"appointment-service/internal/app/drivers/messaging"
	storageDriver "appointment-service/internal/app/drivers/storage"
	"appointment-service/internal/app/services/core/appointments"
	"appointment-service/internal/app/services/shared/eventpublisher"
	"appointment-service/internal/app/services/shared/locker"
	"appointment-service/internal/app/services/shared/redis"
	"appointment-service/internal/app/services/shared/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, internalConfig)
	minioClient := storageDriver.NewMinio(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Storage
	minioStorage := storage.NewMinioStorage(bootstrap.Minio)

	// Messaging
	eventPublisher, err := eventpublisher.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.AppointmentEventQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		minioStorage,
		eventPublisher,
		bootstrap.InternalConfig,
		time.Now,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	// Health
	healthController := controllers.NewHealthController(
		bootstrap.Logger,
		redisRepository,
		func(ctx context.Context) error { return bootstrap.MongoDB.Ping(ctx, readpref.Primary()) },
		bootstrap.InternalConfig,
	)

	// Completion worker
	worker := appointments.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, redisRepository, appointmentUsecase)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, appointmentController, healthController)
	return nil
}
