package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "github.com/sree-1908/migo-travelai/internal/adapters/redis"
	"github.com/sree-1908/migo-travelai/internal/domain"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestCache_RoundTrip(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	loc := domain.Location{Lat: 12.97, Lon: 77.59, DisplayName: "Bengaluru, Karnataka, India"}
	if err := c.Set(ctx, "geo:bangalore", loc, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Location
	ok, err := c.Get(ctx, "geo:bangalore", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != loc {
		t.Fatalf("got %+v, want %+v", got, loc)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	var dst domain.Location
	if ok, err := c.Get(ctx, "nope", &dst); ok || err != nil {
		t.Fatalf("miss: ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", domain.Location{Lat: 1}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "k", &dst); ok {
		t.Fatalf("key survived delete")
	}
}
