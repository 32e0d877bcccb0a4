// Package ratelimit enforces fixed-window request quotas at two scopes: a
// per-client hourly ceiling and a global daily ceiling. Counter state lives
// behind CounterStore so production deployments can share it across
// instances.
package ratelimit

import (
	"context"
	"log"
	"time"
)

// GlobalKey is the singleton counter key for the daily site-wide ceiling.
const GlobalKey = "__global__"

// CounterStore is an atomic fixed-window counter. Hit reads or initializes
// the record for key, resets it when its window has expired, rejects when the
// count has reached ceiling, and otherwise increments. The whole operation
// must be atomic relative to concurrent callers on the same key; the serving
// environment runs multiple instances with no shared memory.
type CounterStore interface {
	Hit(ctx context.Context, key string, window time.Duration, ceiling int) (allowed bool, remaining int, err error)
	// Peek returns the remaining quota without consuming a request.
	Peek(ctx context.Context, key string, ceiling int) (int, error)
}

// Limiter applies the global ceiling first, then the per-client ceiling.
type Limiter struct {
	store CounterStore

	perClientCeiling int
	perClientWindow  time.Duration
	globalCeiling    int
	globalWindow     time.Duration
}

// NewLimiter creates a dual-scope limiter with hourly per-client and daily
// global windows.
func NewLimiter(store CounterStore, perClientCeiling, globalCeiling int) *Limiter {
	return &Limiter{
		store:            store,
		perClientCeiling: perClientCeiling,
		perClientWindow:  time.Hour,
		globalCeiling:    globalCeiling,
		globalWindow:     24 * time.Hour,
	}
}

// Allow reports whether a request from clientID may proceed. A request is
// allowed only when both the global and the per-client counters admit it.
// If the backing store is unreachable the limiter fails open: availability
// of the site is prioritized over strict quota enforcement.
func (l *Limiter) Allow(ctx context.Context, clientID string) bool {
	allowed, _, err := l.store.Hit(ctx, GlobalKey, l.globalWindow, l.globalCeiling)
	if err != nil {
		log.Printf("[RateLimit] DEGRADED: counter store unreachable, failing open: %v", err)
		return true
	}
	if !allowed {
		log.Printf("[RateLimit] Global daily ceiling reached, rejecting client %s", clientID)
		return false
	}

	allowed, remaining, err := l.store.Hit(ctx, clientKey(clientID), l.perClientWindow, l.perClientCeiling)
	if err != nil {
		log.Printf("[RateLimit] DEGRADED: counter store unreachable, failing open: %v", err)
		return true
	}
	if !allowed {
		log.Printf("[RateLimit] Hourly ceiling reached for client %s", clientID)
		return false
	}

	log.Printf("[RateLimit] Request allowed for client %s, %d remaining this hour", clientID, remaining)
	return true
}

// Remaining returns the client's unused hourly quota without consuming any.
func (l *Limiter) Remaining(ctx context.Context, clientID string) int {
	remaining, err := l.store.Peek(ctx, clientKey(clientID), l.perClientCeiling)
	if err != nil {
		return l.perClientCeiling
	}
	return remaining
}

func clientKey(clientID string) string {
	return "client:" + clientID
}
