package httpcache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr())
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("Get(missing) error = %v want ErrMiss", err)
	}
	if err := s.Put(ctx, "k", []byte("content")); err != nil {
		t.Fatalf("Put() unexpected error = %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil || string(got) != "content" {
		t.Errorf("Get() = %q, %v want content", got, err)
	}
	if ttl := mr.TTL("k"); ttl != DefaultTTL {
		t.Errorf("TTL = %v want %v", ttl, DefaultTTL)
	}

	// entries expire.
	mr.FastForward(DefaultTTL)
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("Get(expired) error = %v want ErrMiss", err)
	}
}

func TestRedisStoreUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr())
	defer s.Close()
	mr.Close()

	if _, err := s.Get(context.Background(), "k"); err == nil || errors.Is(err, ErrMiss) {
		t.Errorf("Get() error = %v want a connection error", err)
	}
}

func TestTransportOnRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(mr.Addr())
	defer store.Close()
	srv, hits := countingServer(t, 200, `{"close": 2}`)
	client := NewClient(store, nil)

	for i := 0; i < 2; i++ {
		var v struct{ Close float64 }
		if err := GetJSON(context.Background(), client, srv.URL+"/eod", &v); err != nil {
			t.Fatalf("GetJSON() #%d unexpected error = %v", i, err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d want 1", hits.Load())
	}
	if got := len(mr.Keys()); got != 1 {
		t.Errorf("redis keys = %d want 1", got)
	}
}
