package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pradom/storefront/pkg/logger"
	pkgredis "github.com/pradom/storefront/pkg/redis"
)

type redisKV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SessionKey(sessionID string) string
}

// RedisStore keeps sessions as JSON documents with a TTL, shared by every API instance.
type RedisStore struct {
	kv   redisKV
	ttl  time.Duration
	logg *logger.Logger
}

func NewRedisStore(kv redisKV, ttl time.Duration, logg *logger.Logger) *RedisStore {
	return &RedisStore{kv: kv, ttl: ttl, logg: logg}
}

func (r *RedisStore) Load(ctx context.Context, sessionID string) (State, bool, error) {
	raw, err := r.kv.Get(ctx, r.kv.SessionKey(sessionID))
	if pkgredis.IsNil(err) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("loading session: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// an unreadable record is replaced on the next save
		if r.logg != nil {
			r.logg.Warn(r.logg.WithField(ctx, "decode_error", err.Error()), "session.decode_failed")
		}
		return State{}, false, nil
	}
	return state, true, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := r.kv.Set(ctx, r.kv.SessionKey(sessionID), payload, r.ttl); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.kv.Del(ctx, r.kv.SessionKey(sessionID)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
