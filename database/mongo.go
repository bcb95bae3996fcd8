package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"codebank/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func Connect(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("MongoDB connection failed: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	log.Println("✅ Connected to MongoDB")

	return client, client.Database(cfg.MongoDB), nil
}

func GetCollection(db *mongo.Database, collectionName config.CollectionName) *mongo.Collection {
	return db.Collection(string(collectionName))
}

func Disconnect(client *mongo.Client) {
	if client != nil {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatalf("❌ MongoDB Disconnection Error: %v", err)
		}
		log.Println("✅ MongoDB Disconnected")
	}
}
