package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
)

// CategoryStore is the persistence contract for category documents. Every
// mutation is a single-document operation; the store guarantees per-document
// atomicity only, so multi-document workflows sequence these calls
// themselves.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByRef(ctx context.Context, ref models.CategoryRef) (*models.Category, error)
	Exists(ctx context.Context, ref models.CategoryRef) (bool, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Insert(ctx context.Context, name string) (models.CategoryRef, error)
	SetName(ctx context.Context, ref models.CategoryRef, name string) (int64, error)
	Delete(ctx context.Context, ref models.CategoryRef) (int64, error)
	PushItems(ctx context.Context, ref models.CategoryRef, items []models.FileRef) (int64, error)
	PullItem(ctx context.Context, ref models.CategoryRef, fileID string) (int64, error)
	SetItemName(ctx context.Context, ref models.CategoryRef, fileID, name string) (int64, error)
	FilesForClient(ctx context.Context, clientID string) ([]models.FileRef, error)
}

type categoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository returns the MongoDB-backed CategoryStore.
func NewCategoryRepository(db *mongo.Database) CategoryStore {
	return &categoryRepository{collection: db.Collection("categories")}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) FindByRef(ctx context.Context, ref models.CategoryRef) (*models.Category, error) {
	var category models.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": ref}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepository) Exists(ctx context.Context, ref models.CategoryRef) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": ref})
	if err != nil {
		return false, err
	}
	return count == 1, nil
}

func (r *categoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) Insert(ctx context.Context, name string) (models.CategoryRef, error) {
	result, err := r.collection.InsertOne(ctx, bson.M{
		"name":  name,
		"items": bson.A{},
	})
	if err != nil {
		return models.CategoryRef{}, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.CategoryRef{}, apperr.Internal("category was not inserted into database")
	}

	return models.CategoryByID(insertedID), nil
}

func (r *categoryRepository) SetName(ctx context.Context, ref models.CategoryRef, name string) (int64, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": ref},
		bson.M{"$set": bson.M{"name": name}},
	)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *categoryRepository) Delete(ctx context.Context, ref models.CategoryRef) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": ref})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *categoryRepository) PushItems(ctx context.Context, ref models.CategoryRef, items []models.FileRef) (int64, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": ref},
		bson.M{"$push": bson.M{"items": bson.M{"$each": items}}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *categoryRepository) PullItem(ctx context.Context, ref models.CategoryRef, fileID string) (int64, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": ref},
		bson.M{"$pull": bson.M{"items": bson.M{"fileId": fileID}}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *categoryRepository) SetItemName(ctx context.Context, ref models.CategoryRef, fileID, name string) (int64, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": ref, "items.fileId": fileID},
		bson.M{"$set": bson.M{"items.$.fileName": name}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *categoryRepository) FilesForClient(ctx context.Context, clientID string) ([]models.FileRef, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"items.clientId": clientID}}},
		bson.D{{Key: "$project", Value: bson.M{
			"items": bson.M{
				"$filter": bson.M{
					"input": "$items",
					"as":    "item",
					"cond":  bson.M{"$eq": bson.A{"$$item.clientId", clientID}},
				},
			},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Items []models.FileRef `bson:"items"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	var files []models.FileRef
	for _, doc := range docs {
		files = append(files, doc.Items...)
	}

	return files, nil
}
