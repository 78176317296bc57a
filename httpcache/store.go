package httpcache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by a Store that does not hold a key.
var ErrMiss = errors.New("cache miss")

// Store persists raw HTTP responses by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, content []byte) error
}

// DiskStore keeps one file per key in Dir, os.TempDir() if empty.
type DiskStore struct {
	Dir string
}

func (s DiskStore) path(key string) string {
	dir := s.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, key)
}

func (s DiskStore) Get(_ context.Context, key string) ([]byte, error) {
	content, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMiss
	}
	return content, err
}

func (s DiskStore) Put(_ context.Context, key string, content []byte) error {
	return os.WriteFile(s.path(key), content, 0o600)
}

// DefaultTTL is how long a redis entry lives. Disk entries are never
// deleted, but their key changes every day.
const DefaultTTL = 24 * time.Hour

// RedisStore keeps entries in redis with a time to live.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the redis server at addr (host:port).
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    DefaultTTL,
	}
}

// ParseRedisURL connects to a redis server given as redis://[user:pass@]host:port[/db].
func ParseRedisURL(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: DefaultTTL}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	content, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return content, err
}

func (r *RedisStore) Put(ctx context.Context, key string, content []byte) error {
	return r.client.Set(ctx, key, content, r.ttl).Err()
}

// Close releases the redis connections.
func (r *RedisStore) Close() error { return r.client.Close() }
