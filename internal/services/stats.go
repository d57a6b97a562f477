package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/farm-to-home/internal/cache"
	"github.com/Renal37/farm-to-home/internal/logger"
	"github.com/Renal37/farm-to-home/internal/models"
	"go.uber.org/zap"
)

const (
	orderStatsKey = "stats:orders"
	orderStatsTTL = 5 * time.Minute
)

// StatsService отдает сводную статистику заказов, кэшируя ее на orderStatsTTL.
type StatsService struct {
	storage StatsStorage
	cache   StatsCache
}

//go:generate mockgen -destination=mocks/mock_stats_storage.go -package=mock_services . StatsStorage,StatsCache
type StatsStorage interface {
	CountOrderStats(ctx context.Context) (models.OrderStats, error)
}

type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NewStatsService создает сервис статистики. cache может быть nil, тогда
// статистика всегда читается из базы данных.
func NewStatsService(storage StatsStorage, cache StatsCache) *StatsService {
	return &StatsService{storage: storage, cache: cache}
}

// GetOrderStats возвращает статистику из кэша или из базы данных.
// Ошибки кэша только логируются.
func (s *StatsService) GetOrderStats(ctx context.Context) (models.OrderStats, error) {
	if stats, ok := s.cached(ctx); ok {
		return stats, nil
	}

	stats, err := s.storage.CountOrderStats(ctx)
	if err != nil {
		return models.OrderStats{}, fmt.Errorf("не удалось получить статистику заказов: %w", err)
	}

	if s.cache != nil {
		data, err := json.Marshal(stats)
		if err == nil {
			err = s.cache.Set(ctx, orderStatsKey, data, orderStatsTTL)
		}
		if err != nil {
			logger.Log.Warn("failed to cache order stats", zap.Error(err))
		}
	}

	return stats, nil
}

// Invalidate сбрасывает кэш статистики. Вызывается после фиксации изменений
// заказов, ошибка кэша только логируется.
func (s *StatsService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, orderStatsKey); err != nil {
		logger.Log.Warn("failed to invalidate order stats", zap.Error(err))
	}
}

func (s *StatsService) cached(ctx context.Context) (models.OrderStats, bool) {
	if s.cache == nil {
		return models.OrderStats{}, false
	}

	data, err := s.cache.Get(ctx, orderStatsKey)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Log.Warn("failed to read order stats from cache", zap.Error(err))
		}
		return models.OrderStats{}, false
	}

	var stats models.OrderStats
	if err := json.Unmarshal(data, &stats); err != nil {
		logger.Log.Warn("failed to decode cached order stats", zap.Error(err))
		return models.OrderStats{}, false
	}

	return stats, true
}
