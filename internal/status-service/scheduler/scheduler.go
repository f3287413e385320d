package scheduler

import (
	"VCS_Status_Microservice/internal/status-service/model"
	"VCS_Status_Microservice/internal/status-service/service"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type TargetScheduler interface {
	Start()
	// Stop waits for a running evaluation round to finish
	Stop()
	// RunOnce evaluates every configured target, it is what the cron job calls
	RunOnce()
}

type targetScheduler struct {
	cron          *cron.Cron
	statusService service.StatusService
	logger        *zap.Logger
	targets       []model.Target
	runTimeout    time.Duration
}

func (t *targetScheduler) Start() {
	t.cron.Start()
}

func (t *targetScheduler) Stop() {
	<-t.cron.Stop().Done()
}

func (t *targetScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), t.runTimeout)
	defer cancel()
	up := 0
	for _, target := range t.targets {
		evaluation, err := t.statusService.EvaluateTarget(ctx, target)
		if err != nil {
			t.logger.Error("failed to evaluate target", zap.String("target", target.Name), zap.Error(fmt.Errorf("targetScheduler.RunOnce: %w", err)))
			continue
		}
		if evaluation.Status == model.VerdictUp {
			up++
		}
		t.logger.Debug("target evaluated",
			zap.String("target", target.Name),
			zap.String("status", evaluation.Status.String()),
			zap.Float64("up_ratio", evaluation.UpRatio),
			zap.Bool("cached", evaluation.Cached))
	}
	t.logger.Info("scheduled evaluation finished", zap.Int("targets", len(t.targets)), zap.Int("up", up))
}

// NewTargetScheduler registers the evaluation job under spec (standard 5 field cron syntax).
// Overlapping runs are skipped.
func NewTargetScheduler(spec string, targets []string, runTimeout time.Duration, statusService service.StatusService, logger *zap.Logger) (TargetScheduler, error) {
	t := &targetScheduler{
		statusService: statusService,
		logger:        logger,
		runTimeout:    runTimeout,
	}
	for _, name := range targets {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t.targets = append(t.targets, model.Target{Name: name})
	}
	t.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := t.cron.AddFunc(spec, t.RunOnce); err != nil {
		return nil, fmt.Errorf("NewTargetScheduler: %w", err)
	}
	return t, nil
}
