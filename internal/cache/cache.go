package cache

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/berk/parentportal/internal/pkg/logger"
)

// Store is the command surface GetOrSet needs. *Client satisfies it; tests
// substitute in-memory fakes.
type Store interface {
	Available() bool
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
}

// GetOrSet implements the cache-aside pattern around fetch. The cache is
// strictly best-effort: an unavailable store or any cache error downgrades the
// call to a direct fetch, and a failed write after a successful fetch still
// returns the fetched value. Only non-zero results are written, so a fetch
// failure leaves the key absent. Concurrent misses on the same key fetch and
// write independently; last writer wins.
func GetOrSet[T any](ctx context.Context, store Store, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if store == nil || !store.Available() {
		logger.Debug().Str("key", key).Msg("Cache skipped, store unavailable")
		return fetch(ctx)
	}

	cached, err := store.Get(ctx, key)
	if err == nil {
		var value T
		if uErr := json.Unmarshal([]byte(cached), &value); uErr == nil {
			logger.Debug().Str("key", key).Msg("Cache hit")
			return value, nil
		}
		// Undecodable entry: treat as a miss and let the write below replace it.
		logger.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	} else if err != ErrCacheMiss {
		logger.Error().Err(err).Str("key", key).Msg("Cache read failed, falling back to fetch")
		return fetch(ctx)
	} else {
		logger.Debug().Str("key", key).Msg("Cache miss")
	}

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	if isZero(value) {
		return value, nil
	}

	payload, mErr := json.Marshal(value)
	if mErr != nil {
		logger.Error().Err(mErr).Str("key", key).Msg("Failed to encode value for cache")
		return value, nil
	}
	if sErr := store.SetEx(ctx, key, string(payload), ttl); sErr != nil {
		logger.Error().Err(sErr).Str("key", key).Msg("Cache write failed")
	}

	return value, nil
}

// isZero reports whether v is its type's zero value. Nil slices and maps are
// zero; empty-but-allocated ones are not, matching the intent of caching any
// produced collection while skipping absent results.
func isZero[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	return rv.IsZero()
}
