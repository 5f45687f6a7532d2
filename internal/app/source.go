package app

import (
	"context"

	"pub-trivia-service/internal/domain"
)

// PoolRepository loads the authored question pool (from cache/backing store).
type PoolRepository interface {
	GetPool(ctx context.Context, poolID string) ([]domain.Question, error)
}
