package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/config"
	"github.com/mmsports/backoffice/internal/service/reporting"
	"github.com/mmsports/backoffice/internal/service/sync"
	"github.com/mmsports/backoffice/pkg/clients/webhook"
)

// Scheduler manages the daily digest job.
type Scheduler struct {
	cron     *cron.Cron
	state    *sync.Service
	notifier webhook.Client
	cfg      config.Config
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. When notifier is nil the
// digest job is registered but only logs its output.
func NewScheduler(cfg config.Config, state *sync.Service, notifier webhook.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Digest.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Digest.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		state:    state,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers and starts the daily digest job.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Digest.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Digest.CronSchedule, s.sendDailyDigest); err != nil {
		s.logger.Error("failed to schedule daily digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st := s.state.State()
	digest := reporting.BuildDailyDigest(time.Now(), reporting.DigestInput{
		Staff:        st.Staff,
		Threads:      st.Threads,
		History:      st.History,
		Transactions: st.Transactions,
		Workspace:    st.Workspace,
	})

	if s.notifier == nil {
		s.logger.Info("daily digest (no webhook configured)", zap.String("digest", digest))
		return
	}

	if err := s.notifier.Send(ctx, digest); err != nil {
		s.logger.Error("failed to send daily digest", zap.Error(err))
		return
	}
	s.logger.Info("daily digest sent")
}
