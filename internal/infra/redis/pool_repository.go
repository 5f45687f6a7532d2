package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"pub-trivia-service/internal/domain"
)

// PoolLoader fetches an authored question pool from a backing store.
type PoolLoader interface {
	LoadPool(ctx context.Context, poolID string) ([]domain.Question, error)
}

// PoolRepository caches question pools in Redis (JSON value per pool) and
// falls back to a loader on cache miss. Key: trivia:pool:{poolID}
type PoolRepository struct {
	client *redis.Client
	loader PoolLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewPoolRepository(client *redis.Client, loader PoolLoader, ttl time.Duration) *PoolRepository {
	return &PoolRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *PoolRepository) GetPool(ctx context.Context, poolID string) ([]domain.Question, error) {
	key := r.key(poolID)

	raw, err := r.client.Get(ctx, key).Bytes()
	if err == nil && len(raw) > 0 {
		if questions, ok := decodePool(raw); ok {
			return questions, nil
		}
	}

	result, err, _ := r.sf.Do(poolID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		raw, err := r.client.Get(ctx, key).Bytes()
		if err == nil && len(raw) > 0 {
			if questions, ok := decodePool(raw); ok {
				return questions, nil
			}
		}

		questions, err := r.loader.LoadPool(ctx, poolID)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(questions); err == nil {
			_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()
		}
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *PoolRepository) key(poolID string) string {
	return "trivia:pool:" + poolID
}

func decodePool(raw []byte) ([]domain.Question, bool) {
	var questions []domain.Question
	if err := json.Unmarshal(raw, &questions); err != nil || len(questions) == 0 {
		return nil, false
	}
	return questions, true
}

func (r *PoolRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
