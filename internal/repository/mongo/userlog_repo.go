package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/kevink520/exercisetracker/internal/domain"
	"github.com/kevink520/exercisetracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userLogCollectionName = "user_logs"

// mongoUserLogRepository implements repository.UserLogRepository for the
// denormalized layout: one document per user carrying the embedded log and
// the cached count.
type mongoUserLogRepository struct {
	collection *mongo.Collection
}

// NewMongoUserLogRepository creates a new embedded-log repository backed by MongoDB.
func NewMongoUserLogRepository(db *mongo.Database) repository.UserLogRepository {
	return &mongoUserLogRepository{
		collection: db.Collection(userLogCollectionName),
	}
}

// Create inserts a new user document with an empty log and a zero count.
func (r *mongoUserLogRepository) Create(ctx context.Context, doc *domain.UserDocument) (primitive.ObjectID, error) {
	if doc.Username == "" {
		return primitive.NilObjectID, errors.New("username is required")
	}

	doc.ID = primitive.NewObjectID()
	doc.Count = 0
	if doc.Log == nil {
		doc.Log = []domain.Entry{}
	}
	doc.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a user document, embedded log included.
func (r *mongoUserLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.UserDocument, error) {
	var doc domain.UserDocument
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// GetByUsername retrieves a user document by exact, case-sensitive username
// match. Used for the uniqueness check at registration.
func (r *mongoUserLogRepository) GetByUsername(ctx context.Context, username string) (*domain.UserDocument, error) {
	var doc domain.UserDocument
	filter := bson.M{"username": username}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// AppendEntry pushes the entry onto the log and increments the cached count
// in one update, so concurrent appends for the same user cannot lose
// counter increments. A filter that matches no document is the not-found
// case; there is no separate existence check.
func (r *mongoUserLogRepository) AppendEntry(ctx context.Context, id primitive.ObjectID, entry domain.Entry) (*domain.UserDocument, error) {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$inc":  bson.M{"count": 1},
		"$push": bson.M{"log": entry},
	}

	var doc domain.UserDocument
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// EnsureUserLogIndexes creates necessary indexes for the user_logs
// collection. Call this once during application startup.
func EnsureUserLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Index creation failure is not fatal; the service-level
		// uniqueness check still applies.
	}
}
