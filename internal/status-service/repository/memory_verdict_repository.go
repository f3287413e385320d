package repository

import (
	apperrors "VCS_Status_Microservice/internal/status-service/errors"
	"VCS_Status_Microservice/internal/status-service/model"
	"context"
	"fmt"
	"sync"
	"time"
)

type cachedEvaluation struct {
	evaluation model.Evaluation
	expiresAt  time.Time
}

// memoryVerdictRepository backs the service when no redis is configured.
// Expired verdicts are pruned on every write. lastStatus keeps one entry per
// evaluated target window for the lifetime of the process.
type memoryVerdictRepository struct {
	mu         sync.Mutex
	cacheTTL   time.Duration
	now        func() time.Time
	verdicts   map[model.Target]cachedEvaluation
	lastStatus map[model.Target]model.Verdict
}

func (m *memoryVerdictRepository) GetVerdict(_ context.Context, target model.Target) (model.Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cached, ok := m.verdicts[target]
	if !ok {
		return model.Evaluation{}, fmt.Errorf("memoryVerdictRepository.GetVerdict: %w", apperrors.ErrVerdictNotFound)
	}
	if !m.now().Before(cached.expiresAt) {
		delete(m.verdicts, target)
		return model.Evaluation{}, fmt.Errorf("memoryVerdictRepository.GetVerdict: %w", apperrors.ErrVerdictNotFound)
	}
	return cached.evaluation, nil
}

func (m *memoryVerdictRepository) SetVerdict(_ context.Context, target model.Target, evaluation model.Evaluation) error {
	if m.cacheTTL <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for key, cached := range m.verdicts {
		if !now.Before(cached.expiresAt) {
			delete(m.verdicts, key)
		}
	}
	m.verdicts[target] = cachedEvaluation{
		evaluation: evaluation,
		expiresAt:  now.Add(m.cacheTTL),
	}
	return nil
}

func (m *memoryVerdictRepository) SwapLastStatus(_ context.Context, target model.Target, status model.Verdict) (model.Verdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	previous := m.lastStatus[target]
	m.lastStatus[target] = status
	return previous, nil
}

func NewMemoryVerdictRepository(cacheTTL time.Duration) VerdictRepository {
	return &memoryVerdictRepository{
		cacheTTL:   cacheTTL,
		now:        time.Now,
		verdicts:   make(map[model.Target]cachedEvaluation),
		lastStatus: make(map[model.Target]model.Verdict),
	}
}
