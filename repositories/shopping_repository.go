// repositories/shopping_repository.go
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
)

// ShoppingStore persists a client's shopping list.
type ShoppingStore interface {
	ListForClient(ctx context.Context, clientID string) ([]models.ShoppingItem, error)
	Insert(ctx context.Context, item models.ShoppingItem) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type shoppingRepository struct {
	collection *mongo.Collection
}

func NewShoppingRepository(db *mongo.Database) ShoppingStore {
	return &shoppingRepository{collection: db.Collection("shopping")}
}

func (r *shoppingRepository) ListForClient(ctx context.Context, clientID string) ([]models.ShoppingItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, apperr.Internal("error retrieving shopping items: %v", err)
	}
	defer cursor.Close(ctx)

	items := []models.ShoppingItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperr.Internal("error retrieving shopping items: %v", err)
	}
	return items, nil
}

func (r *shoppingRepository) Insert(ctx context.Context, item models.ShoppingItem) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, apperr.Internal("error creating shopping item: %v", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperr.Internal("no shopping item was created")
	}
	return id, nil
}

func (r *shoppingRepository) Update(ctx context.Context, id string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.InvalidArgument("invalid or missing item id")
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return apperr.Internal("error updating shopping item: %v", err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("shopping item not found")
	}
	return nil
}

func (r *shoppingRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.InvalidArgument("invalid or missing item id")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperr.Internal("error deleting shopping item: %v", err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("shopping item not found")
	}
	return nil
}
