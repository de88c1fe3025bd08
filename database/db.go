package database

import (
	"context"
	"time"

	"huduma/config"
	"huduma/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects and pings MongoDB. A server that cannot reach its store
// is useless, so failure here is fatal.
func InitDB() {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Sugar().Fatalf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	logger.Info("connected to MongoDB",
		zap.String("database", config.AppConfig.DatabaseName))
}
