package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const DefaultRedisKey = "fallguard:status"

// RedisTracker stores the snapshot under a single key so every replica sees
// the same heartbeat.
type RedisTracker struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

func NewRedisTracker(client *redis.Client, now func() time.Time) *RedisTracker {
	if now == nil {
		now = time.Now
	}
	return &RedisTracker{client: client, key: DefaultRedisKey, now: now}
}

func (t *RedisTracker) Ping(ctx context.Context, hb Heartbeat) error {
	const fn = "RedisTracker:Ping"
	payload, err := json.Marshal(Snapshot{LastPing: t.now(), Device: normalize(hb)})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrTrackerFailed, err)
	}
	if err := t.client.Set(ctx, t.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrTrackerFailed, err)
	}
	return nil
}

func (t *RedisTracker) Snapshot(ctx context.Context) (Snapshot, error) {
	const fn = "RedisTracker:Snapshot"
	raw, err := t.client.Get(ctx, t.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("%s:%w:%w", fn, ErrTrackerFailed, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%s:%w:%w", fn, ErrTrackerFailed, err)
	}
	return snap, nil
}
