package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultRedisKey is used when no key is configured.
const DefaultRedisKey = "datafaker:checkpoint"

// kv is the subset of the redis client the store uses.
type kv interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Close() error
}

// RedisStore keeps the JSON record under a single key.
type RedisStore struct {
	rdb  kv
	addr string
	key  string
	now  clock
}

// NewRedisStore connects to addr and pings it.
func NewRedisStore(ctx context.Context, addr, key string) (*RedisStore, error) {
	if addr == "" {
		return nil, errors.New("checkpoint: missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("checkpoint: redis ping: %w", err)
	}
	return newRedisStore(rdb, addr, key), nil
}

func newRedisStore(rdb kv, addr, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{rdb: rdb, addr: addr, key: key}
}

func (s *RedisStore) Location() string { return "redis://" + s.addr + "/" + s.key }

func (s *RedisStore) Load(ctx context.Context) (Record, bool, error) {
	b, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("checkpoint: redis get %s: %w", s.key, err)
	}
	rec, err := decode(b)
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// Save replaces the key in one SET, which redis applies atomically.
func (s *RedisStore) Save(ctx context.Context, rec Record) error {
	b, err := encode(stamp(rec, s.now.now()))
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("checkpoint: redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("checkpoint: redis del %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error { return s.rdb.Close() }
