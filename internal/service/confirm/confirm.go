// Package confirm staples a second, explicit confirmation step onto
// destructive operations. A delete is never executed from its original
// trigger: it is staged into a single pending slot and only runs after a
// separate confirm call. Staging a new action replaces whatever was
// pending, so at most one destructive action awaits confirmation at a time.
package confirm

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrNothingPending indicates a confirm or cancel with no staged action.
var ErrNothingPending = errors.New("no destructive action pending")

// Action is the deferred destructive operation.
type Action func(ctx context.Context) error

// Prompt is the user-facing payload describing the staged action.
type Prompt struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Manager holds the single pending-confirmation slot.
type Manager struct {
	mu      sync.Mutex
	pending *staged
	logger  *zap.Logger
}

type staged struct {
	prompt Prompt
	action Action
}

// NewManager constructs an empty manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Stage parks a destructive action behind the given prompt, displacing any
// previously staged one.
func (m *Manager) Stage(title, message string, action Action) Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending != nil {
		m.logger.Debug("replacing pending destructive action", zap.String("replaced", m.pending.prompt.Title))
	}
	m.pending = &staged{prompt: Prompt{Title: title, Message: message}, action: action}
	return m.pending.prompt
}

// Pending returns the current prompt, if any.
func (m *Manager) Pending() (Prompt, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending == nil {
		return Prompt{}, false
	}
	return m.pending.prompt, true
}

// Confirm executes and clears the staged action. The slot is cleared even
// when the action fails; re-running requires staging again.
func (m *Manager) Confirm(ctx context.Context) error {
	m.mu.Lock()
	st := m.pending
	m.pending = nil
	m.mu.Unlock()

	if st == nil {
		return ErrNothingPending
	}
	return st.action(ctx)
}

// Cancel discards the staged action without running it.
func (m *Manager) Cancel() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending == nil {
		return false
	}
	m.pending = nil
	return true
}
