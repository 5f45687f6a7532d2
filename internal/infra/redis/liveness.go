package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Liveness keeps a best-effort marker in Redis while the game instance is up,
// so dashboards and sibling tooling can see an active session. Session state
// itself never leaves process memory.
type Liveness struct {
	client *redis.Client
	gameID string
	ttl    time.Duration
}

func NewLiveness(client *redis.Client, gameID string, ttl time.Duration) *Liveness {
	return &Liveness{client: client, gameID: gameID, ttl: ttl}
}

// Mark sets the marker with the configured TTL.
func (l *Liveness) Mark(ctx context.Context) error {
	return l.client.Set(ctx, l.key(), "1", l.ttl).Err()
}

// Clear removes the marker.
func (l *Liveness) Clear(ctx context.Context) error {
	return l.client.Del(ctx, l.key()).Err()
}

// Run refreshes the marker at half the TTL until ctx is done, then clears it.
// Refresh failures are ignored; the marker simply expires.
func (l *Liveness) Run(ctx context.Context) {
	_ = l.Mark(ctx)
	interval := l.ttl / 2
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = l.Mark(ctx)
		case <-ctx.Done():
			cleanupCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			_ = l.Clear(cleanupCtx)
			cancel()
			return
		}
	}
}

func (l *Liveness) key() string {
	return "trivia:game:" + l.gameID
}
