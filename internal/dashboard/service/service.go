package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/labelforge/annotate-backend/internal/dashboard/domain"
	"github.com/labelforge/annotate-backend/internal/dashboard/repository"
)

const (
	metricsKeyPrefix = "dashboard:metrics:" // dashboard:metrics:{user_id}
	metricsTTL       = 30 * time.Second
)

// Service serves dashboard aggregates, caching each user's metrics in Redis
// for a short window. The cache is best-effort: Redis failures fall through
// to the database.
type Service struct {
	repo  *repository.Repo
	cache *redis.Client
}

func NewService(repo *repository.Repo, cache *redis.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Metrics(ctx context.Context, userID int64) (*domain.Metrics, error) {
	key := fmt.Sprintf("%s%d", metricsKeyPrefix, userID)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var m domain.Metrics
			if err := json.Unmarshal(raw, &m); err == nil {
				return &m, nil
			}
		}
	}

	m, err := s.repo.Metrics(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(m); err == nil {
			if err := s.cache.Set(ctx, key, raw, metricsTTL).Err(); err != nil {
				log.Printf("[dashboard] cache set failed for user %d: %v", userID, err)
			}
		}
	}

	return m, nil
}
