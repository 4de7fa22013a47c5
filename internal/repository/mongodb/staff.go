package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// ListStaff returns all staff documents. The collection is unordered; the
// UI keeps whatever order the store returns.
func (s *MongoStore) ListStaff(ctx context.Context) ([]models.Staff, error) {
	cursor, err := s.coll(CollStaff).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("decode staff: %w", err)
	}
	return staff, nil
}

// PutStaff upserts a full staff document under its client-assigned id.
func (s *MongoStore) PutStaff(ctx context.Context, st models.Staff) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll(CollStaff).ReplaceOne(ctx, bson.M{"_id": st.ID}, st, opts); err != nil {
		return fmt.Errorf("put staff %s: %w", st.ID, err)
	}
	return nil
}

// UpdateStaffFields applies a partial $set update, mirroring the
// field-by-field edits the UI makes. Fields are not validated here.
func (s *MongoStore) UpdateStaffFields(ctx context.Context, id string, fields map[string]any) error {
	if _, err := s.coll(CollStaff).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("update staff %s: %w", id, err)
	}
	return nil
}

// DeleteStaff removes a staff document.
func (s *MongoStore) DeleteStaff(ctx context.Context, id string) error {
	if _, err := s.coll(CollStaff).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete staff %s: %w", id, err)
	}
	return nil
}
