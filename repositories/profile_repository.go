// repositories/profile_repository.go
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
)

// ProfileStore persists a client's profile items.
type ProfileStore interface {
	ListForClient(ctx context.Context, clientID string) ([]models.ProfileItem, error)
	Insert(ctx context.Context, item models.ProfileItem) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type profileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) ProfileStore {
	return &profileRepository{collection: db.Collection("profileItems")}
}

func (r *profileRepository) ListForClient(ctx context.Context, clientID string) ([]models.ProfileItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, apperr.Internal("error retrieving profile items: %v", err)
	}
	defer cursor.Close(ctx)

	items := []models.ProfileItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperr.Internal("error retrieving profile items: %v", err)
	}
	return items, nil
}

func (r *profileRepository) Insert(ctx context.Context, item models.ProfileItem) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, apperr.Internal("error creating profile item: %v", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperr.Internal("no profile item was created")
	}
	return id, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.InvalidArgument("invalid or missing item id")
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return apperr.Internal("error updating profile item: %v", err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("profile item not found")
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.InvalidArgument("invalid or missing item id")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperr.Internal("error deleting profile item: %v", err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("profile item not found")
	}
	return nil
}
