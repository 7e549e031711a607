package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/config"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/billing"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/pkg/clients/notify"
)

// Scheduler runs the periodic overdue-students digest. It reads the live
// roster; it never mutates student status, which stays a creation-time
// derivation.
type Scheduler struct {
	cron       *cron.Cron
	billingSvc *billing.Service
	notifier   notify.Client
	cfg        config.DigestConfig
	logger     *zap.Logger
}

// NewScheduler creates a scheduler instance. The notifier may be nil, in
// which case the digest is only logged.
func NewScheduler(cfg config.DigestConfig, billingSvc *billing.Service, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(loc)),
		billingSvc: billingSvc,
		notifier:   notifier,
		cfg:        cfg,
		logger:     logger,
	}
}

// Start registers and launches the digest job.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.sendOverdueDigest); err != nil {
		s.logger.Error("failed to schedule overdue digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendOverdueDigest() {
	overdue := s.billingSvc.Overdue()
	s.logger.Info("overdue digest generated", zap.Int("late_students", len(overdue)))

	if len(overdue) == 0 || s.notifier == nil {
		return
	}

	digest := models.OverdueDigest{
		GeneratedAt: time.Now(),
		Students:    overdue,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.notifier.PostOverdueDigest(ctx, digest); err != nil {
		s.logger.Error("failed to deliver overdue digest", zap.Error(err))
	} else {
		s.logger.Info("overdue digest delivered")
	}
}
