package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"discal-backend/internal/apperr"
	userdomain "discal-backend/internal/user/domain"
)

const usersCollection = "users"

// userRepository implements UserRepository over MongoDB
type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		coll: db.Collection(usersCollection),
	}
}

func (r *userRepository) Create(ctx context.Context, user *userdomain.User) (*userdomain.User, error) {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.AlreadyExists("user", user.Email)
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*userdomain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) FindByExternalID(ctx context.Context, externalID string) (*userdomain.User, error) {
	return r.findOne(ctx, bson.M{"user_id": externalID})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*userdomain.User, error) {
	var user userdomain.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// List returns a page of users, most recently created first. Negative skip
// clamps to 0 and a non-positive limit falls back to 100; callers enforce any
// upper bound.
func (r *userRepository) List(ctx context.Context, skip, limit int) ([]*userdomain.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]*userdomain.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (r *userRepository) Update(ctx context.Context, user *userdomain.User) (*userdomain.User, error) {
	return r.replace(ctx, bson.M{"_id": user.ID}, user)
}

// UpdateByExternalID saves the record keyed by the external identity-provider
// subject, the OAuth-flow variant. The subject must already exist.
func (r *userRepository) UpdateByExternalID(ctx context.Context, user *userdomain.User) (*userdomain.User, error) {
	return r.replace(ctx, bson.M{"user_id": user.ExternalID}, user)
}

func (r *userRepository) replace(ctx context.Context, filter bson.M, user *userdomain.User) (*userdomain.User, error) {
	user.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, filter, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.AlreadyExists("user", user.Email)
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NotFound("user", user.ID)
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, bson.M{"username": username})
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

func (r *userRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
