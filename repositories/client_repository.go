package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
)

// ClientStore is the persistence contract for client records. The credit
// read and the later debit are deliberately separate operations; see
// DeductCredit.
type ClientStore interface {
	FindByID(ctx context.Context, id string) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
	Create(ctx context.Context, client models.Client) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Client, error)
	Credits(ctx context.Context, id string) (int, error)
	DeductCredit(ctx context.Context, id string, current int) error
}

type clientRepository struct {
	collection *mongo.Collection
}

// NewClientRepository returns the MongoDB-backed ClientStore.
func NewClientRepository(db *mongo.Database) ClientStore {
	return &clientRepository{collection: db.Collection("clients")}
}

func (r *clientRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid or missing client id")
	}

	var client models.Client
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("client not found")
		}
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("client not found")
		}
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client models.Client) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, client)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperr.AlreadyExists("a client with this email already exists")
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperr.Internal("client was not inserted into database")
	}

	return insertedID, nil
}

func (r *clientRepository) List(ctx context.Context) ([]models.Client, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *clientRepository) Credits(ctx context.Context, id string) (int, error) {
	client, err := r.FindByID(ctx, id)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return 0, apperr.Forbidden("client does not have any credits or does not exist")
		}
		return 0, err
	}

	return client.Credits, nil
}

// DeductCredit writes current-1 rather than issuing an atomic decrement.
// Two concurrent uploads for a near-zero balance can therefore both pass the
// earlier Credits check; this over-spend window is an accepted tradeoff.
func (r *clientRepository) DeductCredit(ctx context.Context, id string, current int) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.InvalidArgument("invalid or missing client id")
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"credits": current - 1}},
	)
	if err != nil {
		return err
	}

	if result.ModifiedCount == 0 {
		return apperr.Internal("no credits were deducted")
	}

	return nil
}
