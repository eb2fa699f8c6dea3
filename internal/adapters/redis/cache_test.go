package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "staybook/internal/adapters/redis"
)

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	type payload struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	if ok, err := c.Get(ctx, "missing", &payload{}); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	want := payload{ID: 7, Name: "Sea View"}
	if err := c.Set(ctx, "hotel:7", want, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	ok, err := c.Get(ctx, "hotel:7", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := c.Del(ctx, "hotel:7"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "hotel:7", &got); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var out string
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatalf("expected key to expire")
	}
}
