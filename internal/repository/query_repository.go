package repository

import (
	"context"
	"time"

	"carbonq-be/internal/models"
	"carbonq-be/internal/platform"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QueryRepository struct {
	collection *mongo.Collection
}

func NewQueryRepository(db *mongo.Database) *QueryRepository {
	return &QueryRepository{
		collection: db.Collection("queries"),
	}
}

// FindAll returns every query of a user, newest first.
func (r *QueryRepository) FindAll(ctx context.Context, userID string) ([]models.Query, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeQueries(ctx, cursor)
}

// FindSince returns a user's queries with timestamp >= since, newest first.
func (r *QueryRepository) FindSince(ctx context.Context, userID string, since time.Time) ([]models.Query, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"user_id":   oid,
		"timestamp": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeQueries(ctx, cursor)
}

// Insert appends one query record and returns its hex id.
func (r *QueryRepository) Insert(ctx context.Context, userID, platformKey string, carbonGrams float64, timestamp time.Time) (string, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", err
	}

	q := models.Query{
		ID:          primitive.NewObjectID(),
		UserID:      oid,
		Platform:    platformKey,
		CarbonGrams: carbonGrams,
		Timestamp:   timestamp.UTC(),
	}

	if _, err := r.collection.InsertOne(ctx, q); err != nil {
		return "", err
	}

	return q.ID.Hex(), nil
}

// decodeQueries reads the cursor leniently: documents missing fields decode
// to zero values (empty platform becomes "unknown", carbon 0.0, timestamp
// the zero time) so one malformed historical record never fails a fetch.
func decodeQueries(ctx context.Context, cursor *mongo.Cursor) ([]models.Query, error) {
	queries := make([]models.Query, 0)
	for cursor.Next(ctx) {
		var q models.Query
		if err := cursor.Decode(&q); err != nil {
			// Undecodable document, skip it
			continue
		}
		if q.Platform == "" {
			q.Platform = platform.DefaultKey
		}
		queries = append(queries, q)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}
