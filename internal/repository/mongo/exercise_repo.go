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

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository for the
// normalized layout: one document per logged entry, keyed by userId.
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise record into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Description == "" || exercise.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("exercise description and user ID are required")
	}

	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByUserID retrieves a user's entries with the date range, ordering and
// limit pushed down into the query. Dates are compared as calendar dates
// ($gte/$lte on the stored UTC-midnight values); the secondary _id sort
// keeps entries with equal dates in insertion order.
func (r *mongoExerciseRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID, logFilter domain.LogFilter) ([]domain.Entry, error) {
	filter := bson.M{"userId": userID}

	if logFilter.From != nil || logFilter.To != nil {
		dateFilter := bson.M{}
		if logFilter.From != nil {
			dateFilter["$gte"] = *logFilter.From
		}
		if logFilter.To != nil {
			dateFilter["$lte"] = *logFilter.To
		}
		filter["date"] = dateFilter
	}

	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "_id", Value: 1},
	})
	if logFilter.Limit > 0 {
		findOptions.SetLimit(logFilter.Limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, len(exercises))
	for i := range exercises {
		entries[i] = exercises[i].Entry()
	}
	return entries, nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises
// collection. Call this once during application startup.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Compound index matching the log query shape.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Queries still work without the index, just slower.
	}
}
