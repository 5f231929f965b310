package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"discal-backend/pkg/config"
)

// NewMongoConnection opens the process-wide MongoDB handle. Callers own the
// returned client and must Disconnect it on shutdown.
func NewMongoConnection(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("MongoDB connected successfully to %s", cfg.MongoURL)
	return client, client.Database(cfg.DatabaseName), nil
}

// EnsureIndexes creates the unique and query indexes every collection relies
// on. Safe to call on every startup; Mongo treats existing indexes as no-ops.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	sparse := true
	unique := true

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: &options.IndexOptions{Unique: &unique, Sparse: &sparse}},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: &options.IndexOptions{Unique: &unique, Sparse: &sparse}},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: &options.IndexOptions{Unique: &unique}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		"events": {
			{Keys: bson.D{{Key: "google_event_id", Value: 1}}, Options: &options.IndexOptions{Unique: &unique, Sparse: &sparse}},
			{Keys: bson.D{{Key: "created_by_user_email", Value: 1}}},
			{Keys: bson.D{{Key: "start.date_time", Value: 1}}},
		},
		"discord_messages": {
			{Keys: bson.D{{Key: "message_id", Value: 1}}, Options: &options.IndexOptions{Unique: &unique}},
			{Keys: bson.D{{Key: "channel_id", Value: 1}}},
			{Keys: bson.D{{Key: "author_id", Value: 1}}},
			{Keys: bson.D{{Key: "received_at", Value: -1}}},
		},
		"vectors": {
			{Keys: bson.D{{Key: "vector_id", Value: 1}}, Options: &options.IndexOptions{Unique: &unique}},
			{Keys: bson.D{{Key: "source_id", Value: 1}}},
			{Keys: bson.D{{Key: "content_type", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
