// Package handlers adapts the application services to the HTTP surface the
// dashboard talks to.
package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/repository/mongodb"
	"github.com/mmsports/backoffice/internal/service/confirm"
	"github.com/mmsports/backoffice/internal/service/insight"
	syncsvc "github.com/mmsports/backoffice/internal/service/sync"
	"github.com/mmsports/backoffice/internal/websocket"
)

// API carries the service dependencies shared by all route handlers.
type API struct {
	state   *syncsvc.Service
	store   mongodb.Store
	confirm *confirm.Manager
	insight insight.Provider
	hub     *websocket.Hub
	logger  *zap.Logger
	now     func() time.Time
}

// NewAPI constructs the HTTP handler adapter.
func NewAPI(state *syncsvc.Service, store mongodb.Store, confirmMgr *confirm.Manager, provider insight.Provider, hub *websocket.Hub, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		state:   state,
		store:   store,
		confirm: confirmMgr,
		insight: provider,
		hub:     hub,
		logger:  logger,
		now:     time.Now,
	}
}
