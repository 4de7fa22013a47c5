package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// ListHistory returns saved production days, newest first (descending by
// the client-assigned timestamp id).
func (s *MongoStore) ListHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: -1}})
	cursor, err := s.coll(CollHistory).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.HistoryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return records, nil
}

// AddHistory inserts a new history record and returns the store-assigned
// document id. The record's own timestamp id is left untouched.
func (s *MongoStore) AddHistory(ctx context.Context, rec models.HistoryRecord) (string, error) {
	rec.DocID = primitive.NewObjectID().Hex()
	if _, err := s.coll(CollHistory).InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("insert history record: %w", err)
	}
	return rec.DocID, nil
}

// ReplaceHistory overwrites a history record addressed by document id.
func (s *MongoStore) ReplaceHistory(ctx context.Context, docID string, rec models.HistoryRecord) error {
	rec.DocID = docID
	if _, err := s.coll(CollHistory).ReplaceOne(ctx, bson.M{"_id": docID}, rec); err != nil {
		return fmt.Errorf("replace history %s: %w", docID, err)
	}
	return nil
}

// DeleteHistory removes a history record by document id.
func (s *MongoStore) DeleteHistory(ctx context.Context, docID string) error {
	if _, err := s.coll(CollHistory).DeleteOne(ctx, bson.M{"_id": docID}); err != nil {
		return fmt.Errorf("delete history %s: %w", docID, err)
	}
	return nil
}
