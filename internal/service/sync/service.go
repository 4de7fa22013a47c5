// Package sync bridges the remote document store to local application
// state. One subscription per collection feeds an in-memory snapshot cache;
// every push replaces the cached list wholesale and republishes it to
// connected UI clients. Mutations go write-through to the store and come
// back through the change stream, except the production workspace singleton
// which is also updated locally in the same call.
package sync

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/domain/models"
	"github.com/mmsports/backoffice/internal/repository/mongodb"
)

// Readiness is the adapter's overall lifecycle state. There is no error
// state: subscription failures are logged and retried, never surfaced.
type Readiness string

const (
	Loading Readiness = "loading"
	Ready   Readiness = "ready"
)

const watchRetryDelay = 5 * time.Second

// Broadcaster pushes a replaced collection snapshot to connected clients.
type Broadcaster interface {
	Broadcast(collection string, data any)
}

// Snapshot is the full cached application state served to the UI.
type Snapshot struct {
	Status       Readiness              `json:"status"`
	Staff        []models.Staff         `json:"staff"`
	Threads      []models.Thread        `json:"threads"`
	History      []models.HistoryRecord `json:"history"`
	Transactions []models.Transaction   `json:"transactions"`
	Workspace    models.Workspace       `json:"currentProduction"`
}

// Service owns the per-collection caches and their subscriptions.
type Service struct {
	store  mongodb.Store
	hub    Broadcaster
	logger *zap.Logger

	mu           sync.RWMutex
	readiness    Readiness
	staff        []models.Staff
	threads      []models.Thread
	history      []models.HistoryRecord
	transactions []models.Transaction
	workspace    models.Workspace
}

// NewService wires a sync service. The workspace starts from its blank
// default until the remote singleton delivers a value.
func NewService(store mongodb.Store, hub Broadcaster, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		hub:       hub,
		logger:    logger,
		readiness: Loading,
		workspace: models.DefaultWorkspace(),
	}
}

// Start performs the bootstrap loads in order (staff, then threads, seeding
// either collection when its first snapshot is empty), flips readiness to
// Ready, then keeps every collection live via change-stream subscriptions
// until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	staff, err := s.store.ListStaff(ctx)
	if err != nil {
		return err
	}
	if len(staff) == 0 {
		s.seedStaff(ctx)
		if staff, err = s.store.ListStaff(ctx); err != nil {
			return err
		}
	}
	s.setStaff(staff)

	threads, err := s.store.ListThreads(ctx)
	if err != nil {
		return err
	}
	if len(threads) == 0 {
		s.seedThreads(ctx)
		if threads, err = s.store.ListThreads(ctx); err != nil {
			return err
		}
	}
	s.setThreads(threads)

	s.mu.Lock()
	s.readiness = Ready
	s.mu.Unlock()
	s.logger.Info("bootstrap collections loaded, adapter ready")

	if err := s.reloadHistory(ctx); err != nil {
		return err
	}
	if err := s.reloadTransactions(ctx); err != nil {
		return err
	}
	if err := s.reloadWorkspace(ctx); err != nil {
		return err
	}

	go s.watchLoop(ctx, mongodb.CollStaff, s.reloadStaff)
	go s.watchLoop(ctx, mongodb.CollThreads, s.reloadThreads)
	go s.watchLoop(ctx, mongodb.CollHistory, s.reloadHistory)
	go s.watchLoop(ctx, mongodb.CollFinances, s.reloadTransactions)
	go s.watchLoop(ctx, mongodb.CollSettings, s.reloadWorkspace)

	return nil
}

// seedStaff writes the bootstrap roster, one write per record. Partial
// failures are logged and skipped; whatever landed will arrive on the next
// snapshot.
func (s *Service) seedStaff(ctx context.Context) {
	s.logger.Info("staff collection empty, writing seed dataset", zap.Int("records", len(models.SeedStaff)))
	for _, st := range models.SeedStaff {
		if err := s.store.PutStaff(ctx, st); err != nil {
			s.logger.Error("failed seeding staff record", zap.String("id", st.ID), zap.Error(err))
		}
	}
}

func (s *Service) seedThreads(ctx context.Context) {
	s.logger.Info("thread collection empty, writing seed dataset", zap.Int("records", len(models.SeedThreads)))
	for _, th := range models.SeedThreads {
		if err := s.store.PutThread(ctx, th); err != nil {
			s.logger.Error("failed seeding thread record", zap.String("id", th.ID), zap.Error(err))
		}
	}
}

// watchLoop keeps one collection subscription alive, replaying the full
// reload on every change signal and resubscribing after stream failures.
func (s *Service) watchLoop(ctx context.Context, collection string, reload func(context.Context) error) {
	for ctx.Err() == nil {
		events, err := s.store.Watch(ctx, collection)
		if err != nil {
			s.logger.Warn("subscription failed, retrying", zap.String("collection", collection), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(watchRetryDelay):
			}
			continue
		}

		for range events {
			if err := reload(ctx); err != nil {
				s.logger.Error("snapshot reload failed", zap.String("collection", collection), zap.Error(err))
			}
		}

		if ctx.Err() == nil {
			s.logger.Warn("subscription closed, resubscribing", zap.String("collection", collection))
			select {
			case <-ctx.Done():
				return
			case <-time.After(watchRetryDelay):
			}
		}
	}
}

func (s *Service) reloadStaff(ctx context.Context) error {
	staff, err := s.store.ListStaff(ctx)
	if err != nil {
		return err
	}
	s.setStaff(staff)
	return nil
}

func (s *Service) reloadThreads(ctx context.Context) error {
	threads, err := s.store.ListThreads(ctx)
	if err != nil {
		return err
	}
	s.setThreads(threads)
	return nil
}

func (s *Service) reloadHistory(ctx context.Context) error {
	history, err := s.store.ListHistory(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.history = history
	s.mu.Unlock()
	s.hub.Broadcast(mongodb.CollHistory, history)
	return nil
}

func (s *Service) reloadTransactions(ctx context.Context) error {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.transactions = txs
	s.mu.Unlock()
	s.hub.Broadcast(mongodb.CollFinances, txs)
	return nil
}

func (s *Service) reloadWorkspace(ctx context.Context) error {
	ws, ok, err := s.store.GetWorkspace(ctx)
	if err != nil {
		return err
	}
	if !ok {
		// Singleton not created yet; keep the local default.
		return nil
	}
	s.mu.Lock()
	s.workspace = ws
	s.mu.Unlock()
	s.hub.Broadcast("currentProduction", ws)
	return nil
}

func (s *Service) setStaff(staff []models.Staff) {
	s.mu.Lock()
	s.staff = staff
	s.mu.Unlock()
	s.hub.Broadcast(mongodb.CollStaff, staff)
}

func (s *Service) setThreads(threads []models.Thread) {
	s.mu.Lock()
	s.threads = threads
	s.mu.Unlock()
	s.hub.Broadcast(mongodb.CollThreads, threads)
}

// UpdateWorkspace applies the one optimistic update in the system: the
// local cache and the remote singleton are written in the same call.
func (s *Service) UpdateWorkspace(ctx context.Context, ws models.Workspace) error {
	s.mu.Lock()
	s.workspace = ws
	s.mu.Unlock()
	s.hub.Broadcast("currentProduction", ws)

	return s.store.PutWorkspace(ctx, ws)
}

// ResetWorkspace returns the editor to one blank row per shift.
func (s *Service) ResetWorkspace(ctx context.Context) error {
	return s.UpdateWorkspace(ctx, models.DefaultWorkspace())
}

// Readiness reports the adapter lifecycle state.
func (s *Service) Readiness() Readiness {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readiness
}

// Staff returns the cached staff snapshot.
func (s *Service) Staff() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.staff
}

// Threads returns the cached thread snapshot.
func (s *Service) Threads() []models.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threads
}

// History returns the cached history snapshot.
func (s *Service) History() []models.HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history
}

// Transactions returns the cached ledger snapshot.
func (s *Service) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions
}

// Workspace returns the cached current-production singleton.
func (s *Service) Workspace() models.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workspace
}

// State returns the whole cached application state in one read.
func (s *Service) State() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Status:       s.readiness,
		Staff:        s.staff,
		Threads:      s.threads,
		History:      s.history,
		Transactions: s.transactions,
		Workspace:    s.workspace,
	}
}

// RebroadcastAll republishes every cached snapshot. Used when a new UI
// client connects; receiving an unchanged snapshot twice is harmless.
func (s *Service) RebroadcastAll() {
	st := s.State()
	s.hub.Broadcast(mongodb.CollStaff, st.Staff)
	s.hub.Broadcast(mongodb.CollThreads, st.Threads)
	s.hub.Broadcast(mongodb.CollHistory, st.History)
	s.hub.Broadcast(mongodb.CollFinances, st.Transactions)
	s.hub.Broadcast("currentProduction", st.Workspace)
}
