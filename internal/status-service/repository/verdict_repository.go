package repository

import (
	apperrors "VCS_Status_Microservice/internal/status-service/errors"
	"VCS_Status_Microservice/internal/status-service/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type VerdictRepository interface {
	// GetVerdict returns apperrors.ErrVerdictNotFound when nothing is cached for the target
	GetVerdict(ctx context.Context, target model.Target) (model.Evaluation, error)
	SetVerdict(ctx context.Context, target model.Target, evaluation model.Evaluation) error
	// SwapLastStatus stores status as the last known status of target and returns the
	// previous one, or an empty Verdict when there was none. The last status never expires.
	SwapLastStatus(ctx context.Context, target model.Target, status model.Verdict) (model.Verdict, error)
}

type verdictRepository struct {
	redis    *redis.Client
	cacheTTL time.Duration
}

func (*verdictRepository) getVerdictKey(target model.Target) string {
	return fmt.Sprintf("verdict:%s:%s:%s", target.Name, target.From, target.Until)
}

func (*verdictRepository) getLastStatusKey(target model.Target) string {
	return fmt.Sprintf("verdict:last:%s:%s:%s", target.Name, target.From, target.Until)
}

func (v *verdictRepository) GetVerdict(ctx context.Context, target model.Target) (model.Evaluation, error) {
	if v.cacheTTL <= 0 {
		return model.Evaluation{}, fmt.Errorf("verdictRepository.GetVerdict: %w", apperrors.ErrVerdictNotFound)
	}
	b, err := v.redis.Get(ctx, v.getVerdictKey(target)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Evaluation{}, fmt.Errorf("verdictRepository.GetVerdict: %w", apperrors.ErrVerdictNotFound)
		}
		return model.Evaluation{}, fmt.Errorf("verdictRepository.GetVerdict: %w", err)
	}
	var evaluation model.Evaluation
	if err = json.Unmarshal(b, &evaluation); err != nil {
		return model.Evaluation{}, fmt.Errorf("verdictRepository.GetVerdict: %w", err)
	}
	return evaluation, nil
}

// SetVerdict writes nothing when the cache TTL is not positive.
func (v *verdictRepository) SetVerdict(ctx context.Context, target model.Target, evaluation model.Evaluation) error {
	if v.cacheTTL <= 0 {
		return nil
	}
	b, err := json.Marshal(evaluation)
	if err != nil {
		return fmt.Errorf("verdictRepository.SetVerdict: %w", err)
	}
	if err = v.redis.Set(ctx, v.getVerdictKey(target), b, v.cacheTTL).Err(); err != nil {
		return fmt.Errorf("verdictRepository.SetVerdict: %w", err)
	}
	return nil
}

func (v *verdictRepository) SwapLastStatus(ctx context.Context, target model.Target, status model.Verdict) (model.Verdict, error) {
	previous, err := v.redis.GetSet(ctx, v.getLastStatusKey(target), string(status)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("verdictRepository.SwapLastStatus: %w", err)
	}
	return model.Verdict(previous), nil
}

func NewVerdictRepository(redis *redis.Client, cacheTTL time.Duration) VerdictRepository {
	return &verdictRepository{
		redis:    redis,
		cacheTTL: cacheTTL,
	}
}
