package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// Collection names as they exist in the hosted database.
const (
	CollStaff    = "staff"
	CollThreads  = "threads"
	CollHistory  = "history"
	CollFinances = "finances"
	CollSettings = "settings"

	workspaceDocID = "currentProduction"
)

// Store defines the persistence operations the application performs against
// the document database. All writes are last-write-wins; there are no
// transactions anywhere in this product.
type Store interface {
	ListStaff(ctx context.Context) ([]models.Staff, error)
	PutStaff(ctx context.Context, s models.Staff) error
	UpdateStaffFields(ctx context.Context, id string, fields map[string]any) error
	DeleteStaff(ctx context.Context, id string) error

	ListThreads(ctx context.Context) ([]models.Thread, error)
	PutThread(ctx context.Context, t models.Thread) error
	UpdateThreadFields(ctx context.Context, id string, fields map[string]any) error
	DeleteThread(ctx context.Context, id string) error

	ListHistory(ctx context.Context) ([]models.HistoryRecord, error)
	AddHistory(ctx context.Context, rec models.HistoryRecord) (string, error)
	ReplaceHistory(ctx context.Context, docID string, rec models.HistoryRecord) error
	DeleteHistory(ctx context.Context, docID string) error

	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	AddTransaction(ctx context.Context, tx models.Transaction) (string, error)
	UpdateTransactionFields(ctx context.Context, id string, fields map[string]any) error
	DeleteTransaction(ctx context.Context, id string) error

	GetWorkspace(ctx context.Context) (models.Workspace, bool, error)
	PutWorkspace(ctx context.Context, ws models.Workspace) error

	// Watch emits a signal for every change committed to the named
	// collection. The channel closes when ctx is done or the underlying
	// change stream fails; callers re-read the collection on each signal.
	Watch(ctx context.Context, collection string) (<-chan struct{}, error)
}

// MongoStore implements Store on top of the official mongo driver.
type MongoStore struct {
	client *mongo.Client
	dbName string
	logger *zap.Logger
}

// NewMongoStore connects to the cluster and verifies the connection.
func NewMongoStore(ctx context.Context, uri, dbName string, logger *zap.Logger) (*MongoStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{client: client, dbName: dbName, logger: logger}, nil
}

func (s *MongoStore) coll(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// Watch opens a change stream on the collection and converts its events to
// bare signals. The stream carries no payload: the sync layer replaces
// cached snapshots wholesale rather than merging deltas.
func (s *MongoStore) Watch(ctx context.Context, collection string) (<-chan struct{}, error) {
	stream, err := s.coll(collection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("open change stream on %s: %w", collection, err)
	}

	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		defer func() { _ = stream.Close(context.Background()) }()

		for stream.Next(ctx) {
			select {
			case events <- struct{}{}:
			default:
				// A signal is already pending; the next reload
				// will observe this change too.
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			s.logger.Warn("change stream ended", zap.String("collection", collection), zap.Error(err))
		}
	}()

	return events, nil
}

// Close closes the MongoDB connection.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
