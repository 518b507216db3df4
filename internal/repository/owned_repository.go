package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OwnedRepository is the shared mongo access layer for user-attributed
// records (reviews, ratings). Record types only differ in shape, the
// find/update/delete/aggregate plumbing is identical for both.
// Absent documents surface as mongo.ErrNoDocuments everywhere, including
// ids that cannot even be parsed into an ObjectID.
type OwnedRepository[T any] struct {
	mongodb    *mongo.Database
	collection string
}

func NewOwnedRepository[T any](mongodb *mongo.Database, collection string) *OwnedRepository[T] {
	return &OwnedRepository[T]{
		mongodb:    mongodb,
		collection: collection,
	}
}

//------------------------------------------
//------------------------------------------

func (r *OwnedRepository[T]) Insert(ctx context.Context, record *T) (string, error) {
	res, err := r.mongodb.
		Collection(r.collection).
		InsertOne(ctx, record)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	return id.Hex(), nil
}

func (r *OwnedRepository[T]) FindById(ctx context.Context, recordId string) (*T, error) {
	id, err := primitive.ObjectIDFromHex(recordId)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var result T
	err = r.mongodb.
		Collection(r.collection).
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(&result)

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *OwnedRepository[T]) FindByField(ctx context.Context, field string, value string) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.mongodb.
		Collection(r.collection).
		Find(ctx, bson.D{{Key: field, Value: value}}, opts)
	if err != nil {
		return nil, err
	}

	results := make([]T, 0)
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *OwnedRepository[T]) UpdateById(ctx context.Context, recordId string, fields map[string]interface{}) error {
	id, err := primitive.ObjectIDFromHex(recordId)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	update := bson.D{}
	for key, value := range fields {
		update = append(update, bson.E{Key: key, Value: value})
	}

	res, err := r.mongodb.
		Collection(r.collection).
		UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: update}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *OwnedRepository[T]) DeleteById(ctx context.Context, recordId string) error {
	id, err := primitive.ObjectIDFromHex(recordId)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.mongodb.
		Collection(r.collection).
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AverageByField computes the mean and count of the rating field across
// matching records. Returns (0, 0) when no records match.
func (r *OwnedRepository[T]) AverageByField(ctx context.Context, field string, value string) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: field, Value: value}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "totalCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.mongodb.
		Collection(r.collection).
		Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}

	var results []struct {
		AverageRating float64 `bson:"averageRating"`
		TotalCount    int64   `bson:"totalCount"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].AverageRating, results[0].TotalCount, nil
}
