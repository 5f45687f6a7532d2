package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pub-trivia-service/internal/domain"
)

func TestPoolRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		PoolLoader: NewStaticPoolLoader(map[string][]domain.Question{
			"default": samplePool(),
		}),
	}
	repo := NewPoolRepository(loader, time.Minute)

	if _, err := repo.GetPool(context.Background(), "default"); err != nil {
		t.Fatalf("get pool: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetPool(context.Background(), "default"); err != nil {
		t.Fatalf("get pool 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestStaticPoolLoaderUnknownPool(t *testing.T) {
	loader := NewStaticPoolLoader(map[string][]domain.Question{})
	if _, err := loader.LoadPool(context.Background(), "missing"); !errors.Is(err, domain.ErrPoolNotFound) {
		t.Fatalf("expected pool-not-found, got %v", err)
	}
}

type countingLoader struct {
	PoolLoader
	calls int
}

func (l *countingLoader) LoadPool(ctx context.Context, poolID string) ([]domain.Question, error) {
	l.calls++
	return l.PoolLoader.LoadPool(ctx, poolID)
}

func samplePool() []domain.Question {
	return []domain.Question{
		{
			Category: "Math",
			Prompt:   "What is 2 + 2?",
			Options:  []string{"3", "4", "5", "6"},
			Correct:  1,
			Points:   1,
		},
	}
}
