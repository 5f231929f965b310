package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	webhookdomain "discal-backend/internal/webhook/domain"
)

const messagesCollection = "discord_messages"

// messageLogRepository implements MessageLogRepository over MongoDB
type messageLogRepository struct {
	coll *mongo.Collection
}

func NewMessageLogRepository(db *mongo.Database) MessageLogRepository {
	return &messageLogRepository{
		coll: db.Collection(messagesCollection),
	}
}

func (r *messageLogRepository) Append(ctx context.Context, log *webhookdomain.MessageLog) error {
	if log.ID == "" {
		log.ID = primitive.NewObjectID().Hex()
	}
	if log.ReceivedAt.IsZero() {
		log.ReceivedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, log); err != nil {
		// Redelivered events arrive with the same message id; the unique
		// index rejects them and that is fine.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	return nil
}
