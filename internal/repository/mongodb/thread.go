package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// ListThreads returns the thread inventory ordered by sequence number.
func (s *MongoStore) ListThreads(ctx context.Context) ([]models.Thread, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sn", Value: 1}})
	cursor, err := s.coll(CollThreads).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find threads: %w", err)
	}
	defer cursor.Close(ctx)

	var threads []models.Thread
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, fmt.Errorf("decode threads: %w", err)
	}
	return threads, nil
}

// PutThread upserts a full thread document under its client-assigned id.
func (s *MongoStore) PutThread(ctx context.Context, t models.Thread) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll(CollThreads).ReplaceOne(ctx, bson.M{"_id": t.ID}, t, opts); err != nil {
		return fmt.Errorf("put thread %s: %w", t.ID, err)
	}
	return nil
}

// UpdateThreadFields applies a partial $set update to one thread.
func (s *MongoStore) UpdateThreadFields(ctx context.Context, id string, fields map[string]any) error {
	if _, err := s.coll(CollThreads).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("update thread %s: %w", id, err)
	}
	return nil
}

// DeleteThread removes a thread document.
func (s *MongoStore) DeleteThread(ctx context.Context, id string) error {
	if _, err := s.coll(CollThreads).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete thread %s: %w", id, err)
	}
	return nil
}
