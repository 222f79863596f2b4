package database

import (
	"appointment-service/internal/app/config"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	mongoConnectTimeout         = 10 * time.Second
	mongoServerSelectionTimeout = 5 * time.Second
	mongoMaxPoolSize            = 50
)

// NewMongoDB connects to the appointment document store and fails fast when
// the primary cannot be reached.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	uri := fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)

	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName("appointment-service").
		SetMaxPoolSize(mongoMaxPoolSize).
		SetServerSelectionTimeout(mongoServerSelectionTimeout)
	if driverConfig.MongoDB.Username != "" {
		clientOptions.SetAuth(options.Credential{
			Username: driverConfig.MongoDB.Username,
			Password: driverConfig.MongoDB.Password,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping mongo primary at %s:%s: %s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port, err.Error())
	}
	log.Printf("Successfully connected to mongo database %s", driverConfig.MongoDB.DbName)
	return client
}
