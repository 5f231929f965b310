package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	caldomain "discal-backend/internal/calendar/domain"
)

const eventsCollection = "events"

// eventRepository implements EventRepository over MongoDB
type eventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &eventRepository{
		coll: db.Collection(eventsCollection),
	}
}

func (r *eventRepository) FindByGoogleID(ctx context.Context, googleEventID string) (*caldomain.CalendarEvent, error) {
	var event caldomain.CalendarEvent
	err := r.coll.FindOne(ctx, bson.M{"google_event_id": googleEventID}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Insert(ctx context.Context, event *caldomain.CalendarEvent) error {
	if event.ID == "" {
		event.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, event)
	return err
}

func (r *eventRepository) Update(ctx context.Context, event *caldomain.CalendarEvent) error {
	event.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"google_event_id": event.GoogleEventID}, event)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *eventRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*caldomain.CalendarEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start.date_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"created_by_user_email": ownerEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*caldomain.CalendarEvent, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
