package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// workspaceDoc wraps the singleton workspace with its fixed document id.
type workspaceDoc struct {
	ID    string                   `bson:"_id"`
	Day   []models.ProductionEntry `bson:"day"`
	Night []models.ProductionEntry `bson:"night"`
}

// GetWorkspace reads the singleton current-production document. The second
// return value reports whether the document exists yet.
func (s *MongoStore) GetWorkspace(ctx context.Context) (models.Workspace, bool, error) {
	var doc workspaceDoc
	err := s.coll(CollSettings).FindOne(ctx, bson.M{"_id": workspaceDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Workspace{}, false, nil
	}
	if err != nil {
		return models.Workspace{}, false, fmt.Errorf("read workspace: %w", err)
	}
	return models.Workspace{Day: doc.Day, Night: doc.Night}, true, nil
}

// PutWorkspace replaces the singleton whole. Concurrent editors are
// last-write-wins on the full object.
func (s *MongoStore) PutWorkspace(ctx context.Context, ws models.Workspace) error {
	doc := workspaceDoc{ID: workspaceDocID, Day: ws.Day, Night: ws.Night}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll(CollSettings).ReplaceOne(ctx, bson.M{"_id": workspaceDocID}, doc, opts); err != nil {
		return fmt.Errorf("put workspace: %w", err)
	}
	return nil
}
