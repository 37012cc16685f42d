package idempotency

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() {
		if cerr := client.Close(); cerr != nil {
			t.Logf("redis close: %v", cerr)
		}
	})
	return NewRedisStore(client, ttl), m
}

func TestRedisStore_AddRemove(t *testing.T) {
	store, m := newTestStore(t, time.Minute)
	ctx := context.Background()

	added, err := store.Add(ctx, "k1")
	if err != nil || !added {
		t.Fatalf("expected first add to succeed, added=%v err=%v", added, err)
	}
	if !m.Exists(keyPrefix + "k1") {
		t.Fatalf("expected namespaced key in redis")
	}

	added, err = store.Add(ctx, "k1")
	if err != nil || added {
		t.Fatalf("expected duplicate, added=%v err=%v", added, err)
	}

	if err := store.Remove(ctx, "k1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	added, err = store.Add(ctx, "k1")
	if err != nil || !added {
		t.Fatalf("expected add after remove, added=%v err=%v", added, err)
	}
}

func TestRedisStore_KeysExpire(t *testing.T) {
	store, m := newTestStore(t, time.Minute)
	ctx := context.Background()

	if _, err := store.Add(ctx, "k2"); err != nil {
		t.Fatalf("add: %v", err)
	}
	m.FastForward(2 * time.Minute)

	added, err := store.Add(ctx, "k2")
	if err != nil || !added {
		t.Fatalf("expected key to be reusable after ttl, added=%v err=%v", added, err)
	}
}

func TestRedisStore_KeysSurviveRestart(t *testing.T) {
	store, m := newTestStore(t, time.Minute)
	ctx := context.Background()

	if _, err := store.Add(ctx, "k3"); err != nil {
		t.Fatalf("add: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	defer client.Close()
	restarted := NewRedisStore(client, time.Minute)

	added, err := restarted.Add(ctx, "k3")
	if err != nil || added {
		t.Fatalf("expected key seen by a fresh store, added=%v err=%v", added, err)
	}
}
