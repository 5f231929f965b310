package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"discal-backend/internal/apperr"
	searchdomain "discal-backend/internal/search/domain"
)

const vectorsCollection = "vectors"

// vectorRecordRepository implements VectorRecordRepository over MongoDB
type vectorRecordRepository struct {
	coll *mongo.Collection
}

func NewVectorRecordRepository(db *mongo.Database) VectorRecordRepository {
	return &vectorRecordRepository{
		coll: db.Collection(vectorsCollection),
	}
}

func (r *vectorRecordRepository) Insert(ctx context.Context, record *searchdomain.VectorRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.AlreadyExists("vector record", record.VectorID)
		}
		return err
	}
	return nil
}

func (r *vectorRecordRepository) FindByVectorID(ctx context.Context, vectorID string) (*searchdomain.VectorRecord, error) {
	var record searchdomain.VectorRecord
	err := r.coll.FindOne(ctx, bson.M{"vector_id": vectorID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *vectorRecordRepository) FindByVectorIDs(ctx context.Context, vectorIDs []string) ([]*searchdomain.VectorRecord, error) {
	if len(vectorIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"vector_id": bson.M{"$in": vectorIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*searchdomain.VectorRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *vectorRecordRepository) DeleteByVectorID(ctx context.Context, vectorID string) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"vector_id": vectorID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
