package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "hotelbook/internal/adapters/redis"
	"hotelbook/internal/domain"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := cache.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var got domain.Hotel
	hit, err := cache.Get(ctx, "hotel:1", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("empty cache should miss")
	}

	rating := 5
	want := domain.Hotel{ID: 1, Name: "Grand Hotel", City: "New York", Country: "USA", Rating: &rating}
	if err := cache.Set(ctx, "hotel:1", want, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	hit, err = cache.Get(ctx, "hotel:1", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("expected a hit after set")
	}
	if got.Name != want.Name || got.City != want.City || got.Rating == nil || *got.Rating != rating {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if !mr.Exists("hotel:1") {
		t.Fatal("key should exist in redis")
	}

	if err := cache.Del(ctx, "hotel:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	hit, err = cache.Get(ctx, "hotel:1", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("deleted key should miss")
	}
}

func TestCacheTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := cache.Set(ctx, "rooms:hotel:1:available", []domain.Room{{ID: 10}}, 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second) // past the TTL

	var rooms []domain.Room
	hit, err := cache.Get(ctx, "rooms:hotel:1:available", &rooms)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("expired key should miss")
	}
}
