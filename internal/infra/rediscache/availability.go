// Package rediscache keeps a display cache of availability search results.
// The allocation path never reads it; availability truth is always derived
// from the confirmed booking set. A generation counter is bumped on every
// booking or room mutation, which invalidates all cached searches at once
// instead of tracking per-range keys.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stayledger/internal/domain/booking"

	"github.com/redis/go-redis/v9"
)

const generationKey = "availability:gen"

type AvailabilityCache struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl: ttl,
	}
}

// NewWithClient is used by tests to plug in a miniredis-backed client.
func NewWithClient(c *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{c: c, ttl: ttl}
}

func (r *AvailabilityCache) Generation(ctx context.Context) (int64, error) {
	gen, err := r.c.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return gen, nil
}

// Invalidate bumps the generation so every cached search goes stale.
func (r *AvailabilityCache) Invalidate(ctx context.Context) error {
	return r.c.Incr(ctx, generationKey).Err()
}

func (r *AvailabilityCache) GetSearch(ctx context.Context, gen int64, stay booking.StayRange, dst any) (bool, error) {
	v, err := r.c.Get(ctx, searchKey(gen, stay)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(v, dst)
}

func (r *AvailabilityCache) SetSearch(ctx context.Context, gen int64, stay booking.StayRange, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.c.Set(ctx, searchKey(gen, stay), b, r.ttl).Err()
}

func searchKey(gen int64, stay booking.StayRange) string {
	return fmt.Sprintf("rooms:available:%d:%s:%s",
		gen,
		stay.CheckIn().Format(time.DateOnly),
		stay.CheckOut().Format(time.DateOnly))
}

// Noop satisfies the cache ports when no Redis address is configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (Noop) Generation(context.Context) (int64, error) { return 0, nil }

func (Noop) Invalidate(context.Context) error { return nil }

func (Noop) GetSearch(context.Context, int64, booking.StayRange, any) (bool, error) {
	return false, nil
}

func (Noop) SetSearch(context.Context, int64, booking.StayRange, any) error { return nil }
