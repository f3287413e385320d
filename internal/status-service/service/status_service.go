package service

import (
	"VCS_Status_Microservice/internal/status-service/classifier"
	apperrors "VCS_Status_Microservice/internal/status-service/errors"
	"VCS_Status_Microservice/internal/status-service/graphite"
	"VCS_Status_Microservice/internal/status-service/model"
	"VCS_Status_Microservice/internal/status-service/publisher"
	"VCS_Status_Microservice/internal/status-service/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatusService interface {
	Classify(batch []model.DataPoint) model.Evaluation
	// EvaluateTarget fetches the target from graphite and classifies it. A target that
	// cannot be fetched is reported DOWN rather than failing the call.
	EvaluateTarget(ctx context.Context, target model.Target) (model.Evaluation, error)
}

type statusService struct {
	graphiteClient    graphite.Client
	verdictRepository repository.VerdictRepository
	verdictPublisher  publisher.VerdictPublisher
	logger            *zap.Logger
	defaultFrom       string
	defaultUntil      string
	now               func() time.Time
}

func (s *statusService) Classify(batch []model.DataPoint) model.Evaluation {
	return s.evaluation(model.Target{}, classifier.Summarize(batch))
}

func (s *statusService) EvaluateTarget(ctx context.Context, target model.Target) (model.Evaluation, error) {
	if target.Name == "" {
		return model.Evaluation{}, fmt.Errorf("StatusService.EvaluateTarget: %w", apperrors.ErrEmptyTarget)
	}
	if target.From == "" {
		target.From = s.defaultFrom
	}
	if target.Until == "" {
		target.Until = s.defaultUntil
	}

	cached, err := s.verdictRepository.GetVerdict(ctx, target)
	if err == nil {
		cached.Cached = true
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrVerdictNotFound) {
		s.logger.Warn("failed to read cached verdict", zap.String("target", target.Name), zap.Error(fmt.Errorf("StatusService.EvaluateTarget: %w", err)))
	}

	points, err := s.graphiteClient.FetchDatapoints(ctx, target)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotConfigured) {
			return model.Evaluation{}, fmt.Errorf("StatusService.EvaluateTarget: %w", err)
		}
		s.logger.Warn("failed to fetch datapoints, reporting DOWN", zap.String("target", target.Name), zap.Error(fmt.Errorf("StatusService.EvaluateTarget: %w", err)))
		points = nil
	}

	evaluation := s.evaluation(target, classifier.Summarize(points))
	if err = s.verdictRepository.SetVerdict(ctx, target, evaluation); err != nil {
		s.logger.Warn("failed to cache verdict", zap.String("target", target.Name), zap.Error(fmt.Errorf("StatusService.EvaluateTarget: %w", err)))
	}

	previous, err := s.verdictRepository.SwapLastStatus(ctx, target, evaluation.Status)
	if err != nil {
		s.logger.Warn("failed to swap last status", zap.String("target", target.Name), zap.Error(fmt.Errorf("StatusService.EvaluateTarget: %w", err)))
		return evaluation, nil
	}
	if previous != evaluation.Status {
		s.publishChange(ctx, evaluation, previous)
	}
	return evaluation, nil
}

func (s *statusService) publishChange(ctx context.Context, evaluation model.Evaluation, previous model.Verdict) {
	event := model.VerdictEvent{
		EventID:        uuid.NewString(),
		Target:         evaluation.Target,
		Status:         evaluation.Status,
		PreviousStatus: previous,
		UpCount:        evaluation.UpCount,
		TotalCount:     evaluation.TotalCount,
		UpRatio:        evaluation.UpRatio,
		EvaluatedAt:    evaluation.EvaluatedAt,
	}
	if err := s.verdictPublisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish verdict change", zap.String("target", evaluation.Target), zap.Error(fmt.Errorf("StatusService.publishChange: %w", err)))
		return
	}
	s.logger.Info("verdict changed",
		zap.String("target", evaluation.Target),
		zap.String("previous_status", previous.String()),
		zap.String("status", evaluation.Status.String()))
}

func (s *statusService) evaluation(target model.Target, summary classifier.Summary) model.Evaluation {
	return model.Evaluation{
		Target:      target.Name,
		From:        target.From,
		Until:       target.Until,
		Status:      summary.Verdict,
		UpCount:     summary.Up,
		TotalCount:  summary.Total,
		UpRatio:     summary.Ratio,
		EvaluatedAt: s.now().UTC(),
	}
}

func NewStatusService(graphiteClient graphite.Client, verdictRepository repository.VerdictRepository, verdictPublisher publisher.VerdictPublisher, logger *zap.Logger, defaultFrom string, defaultUntil string) StatusService {
	return &statusService{
		graphiteClient:    graphiteClient,
		verdictRepository: verdictRepository,
		verdictPublisher:  verdictPublisher,
		logger:            logger,
		defaultFrom:       defaultFrom,
		defaultUntil:      defaultUntil,
		now:               time.Now,
	}
}
