package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/config"
	"github.com/mmsports/backoffice/internal/repository/mongodb"
	"github.com/mmsports/backoffice/internal/scheduler"
	"github.com/mmsports/backoffice/internal/server/handlers"
	"github.com/mmsports/backoffice/internal/server/router"
	"github.com/mmsports/backoffice/internal/service/confirm"
	"github.com/mmsports/backoffice/internal/service/insight"
	syncsvc "github.com/mmsports/backoffice/internal/service/sync"
	"github.com/mmsports/backoffice/internal/websocket"
	"github.com/mmsports/backoffice/pkg/clients/webhook"
	"github.com/mmsports/backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := mongodb.NewMongoStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
	if err != nil {
		baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	hub := websocket.NewHub(baseLogger.Named("ws.hub"))
	go hub.Run()

	state := syncsvc.NewService(store, hub, baseLogger.Named("svc.sync"))

	syncCtx, stopSync := context.WithCancel(context.Background())
	defer stopSync()
	if err := state.Start(syncCtx); err != nil {
		baseLogger.Fatal("failed to start state sync", zap.Error(err))
	}

	confirmMgr := confirm.NewManager(baseLogger.Named("svc.confirm"))

	// Select the generative-insight provider.
	var provider insight.Provider
	switch cfg.Insight.Provider {
	case config.InsightProviderGemini:
		gemini, err := insight.NewGemini(context.Background(), cfg.Insight.GeminiAPIKey, cfg.Insight.GeminiModel)
		if err != nil {
			baseLogger.Fatal("failed to init gemini client", zap.Error(err))
		}
		defer gemini.Close()
		provider = gemini
		baseLogger.Info("gemini insight provider enabled")
	default:
		provider = insight.NewStub()
		baseLogger.Info("stub insight provider enabled")
	}

	var notifier webhook.Client
	if cfg.Alert.WebhookURL != "" {
		notifier = webhook.NewClient(cfg.Alert)
		baseLogger.Info("alert webhook enabled")
	} else {
		baseLogger.Warn("alert webhook url missing, daily digest delivery disabled")
	}

	api := handlers.NewAPI(state, store, confirmMgr, provider, hub, baseLogger.Named("handlers"))
	engine := router.New(api, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, state, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
