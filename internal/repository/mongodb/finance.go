package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// ListTransactions returns the ledger ordered by date, newest first.
func (s *MongoStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.coll(CollFinances).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var txs []models.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return txs, nil
}

// AddTransaction inserts a ledger entry and returns the store-assigned id.
func (s *MongoStore) AddTransaction(ctx context.Context, tx models.Transaction) (string, error) {
	tx.ID = primitive.NewObjectID().Hex()
	if _, err := s.coll(CollFinances).InsertOne(ctx, tx); err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}
	return tx.ID, nil
}

// UpdateTransactionFields applies a partial $set update to one ledger
// entry. The update API permits any field, including type.
func (s *MongoStore) UpdateTransactionFields(ctx context.Context, id string, fields map[string]any) error {
	if _, err := s.coll(CollFinances).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("update transaction %s: %w", id, err)
	}
	return nil
}

// DeleteTransaction removes a ledger entry.
func (s *MongoStore) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := s.coll(CollFinances).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return nil
}
