package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// GuideReloader re-reads the study guide from its source.
type GuideReloader interface {
	Reload(ctx context.Context) (int, error)
}

// ReloadService periodically reloads the study guide on a cron schedule.
type ReloadService struct {
	reloader GuideReloader
	schedule cron.Schedule
	expr     string
	logger   *zap.Logger
}

// NewReloadService parses expr as a standard five-field cron expression.
func NewReloadService(reloader GuideReloader, expr string, logger *zap.Logger) (*ReloadService, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("parse reload schedule %q: %w", expr, err)
	}

	return &ReloadService{
		reloader: reloader,
		schedule: schedule,
		expr:     expr,
		logger:   logger,
	}, nil
}

// Start runs the reload job until ctx is cancelled.
func (s *ReloadService) Start(ctx context.Context) {
	c := cron.New(cron.WithLocation(time.UTC))
	c.Schedule(s.schedule, cron.FuncJob(func() {
		s.reload(ctx)
	}))

	c.Start()
	s.logger.Info("study guide reload scheduled", zap.String("schedule", s.expr))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("study guide reload stopped")
}

func (s *ReloadService) reload(ctx context.Context) {
	n, err := s.reloader.Reload(ctx)
	if err != nil {
		s.logger.Error("failed to reload study guide, keeping previous entries", zap.Error(err))
		return
	}
	s.logger.Info("study guide reloaded", zap.Int("entries", n))
}
