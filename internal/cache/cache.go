// Package cache is the short-TTL result cache for search responses.
//
// It is an explicit service object injected into the HTTP layer — never
// a package-level singleton — so tests can run without shared state.
// Entries are written once and expire; nothing mutates a stored value
// in place. Every operation is best-effort: a miss or a Redis error
// must fall back to recomputation, never fail the request.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"alliedboard/search-service/internal/category"
	"alliedboard/search-service/internal/location"
	"alliedboard/search-service/internal/search"
)

// keyPrefix namespaces every entry so Clear can scan-and-delete without
// touching unrelated keys in a shared Redis.
const keyPrefix = "search:v1:"

// Cache wraps a Redis client with TTL'd get/set and invalidation.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Cache whose entries expire after ttl.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Key builds the canonical signature for a (query, filters) pair.
// Values are normalised (query lower-cased, city slugged, state parsed)
// and fields emitted in a fixed order, so equivalent requests — however
// the caller assembled them — share one entry.
func Key(query string, f search.Filters) string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString("q=")
	b.WriteString(strings.Join(search.Tokenize(query), "+"))

	writeOpt := func(name, val string) {
		b.WriteString("|")
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(val)
	}
	if f.Occupation != nil {
		writeOpt("occ", string(*f.Occupation))
	}
	if f.City != nil {
		writeOpt("city", location.SlugifyCity(*f.City))
	}
	if f.State != nil {
		writeOpt("state", string(location.ParseState(*f.State)))
	}
	if f.JobType != nil {
		writeOpt("type", strings.ToLower(*f.JobType))
	}
	if f.ExperienceLevel != nil {
		writeOpt("exp", strings.ToLower(*f.ExperienceLevel))
	}
	return b.String()
}

// CategoryKey builds the signature for a category listing page.
func CategoryKey(slug category.Slug) string {
	return keyPrefix + "cat=" + string(slug)
}

// Get returns the cached payload for key, or (nil, false) on miss or
// error. Errors are logged and swallowed — the caller recomputes.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("cache get failed", "key", key, "err", err)
		return nil, false
	}
	return val, true
}

// Set stores payload under key with the configured TTL. Non-fatal.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("cache set failed", "key", key, "err", err)
	}
}

// Invalidate drops a single entry.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("cache invalidate failed", "key", key, "err", err)
	}
}

// Clear drops every entry under the cache namespace. Called after the
// job snapshot changes so listing pages never serve stale results past
// the refresh.
func (c *Cache) Clear(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("cache clear scan failed", "err", err)
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("cache clear del failed", "err", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
