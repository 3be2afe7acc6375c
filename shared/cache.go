package shared

import (
	"context"
	"strconv"
	"strings"
	"time"

	"rentdesk/shared/cache"
	"rentdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGenerationPart = "generation"

	// CacheGenerationWindow bounds how long an idle generation counter lives.
	CacheGenerationWindow = 7 * 24 * time.Hour
)

// BuildCacheKey joins parts under the application prefix.
func BuildCacheKey(parts ...string) string {
	return strings.Join(append([]string{constant.CacheKeyPrefix}, parts...), constant.CacheKeySeparator)
}

// BuildCachePattern matches every key stored under the given parts.
func BuildCachePattern(parts ...string) string {
	return BuildCacheKey(parts...) + constant.CacheKeySeparator + constant.Asterix
}

// CacheGenerationKey is the counter bumped each time namespace is invalidated. It lives
// outside the namespace so clearing the namespace never resets it.
func CacheGenerationKey(namespace string) string {
	return BuildCacheKey(cacheGenerationPart, namespace)
}

// VersionedCacheKey builds a key under the namespace's current generation. ok is false when
// the generation cannot be read, in which case the caller must bypass the cache.
func VersionedCacheKey(ctx context.Context, redisCache cache.RedisCache, namespace string, parts ...string) (key string, ok bool) {
	var generation int64

	if err := redisCache.Get(ctx, CacheGenerationKey(namespace), &generation); err != nil && !cache.IsMiss(err) {
		log.Warn().Err(err).Str("namespace", namespace).Msg("cache generation unavailable, bypassing cache")

		return "", false
	}

	return BuildCacheKey(append([]string{namespace, strconv.FormatInt(generation, 10)}, parts...)...), true
}

// SaveCache stores value under key. Failures are logged and never reach the caller.
func SaveCache(ctx context.Context, redisCache cache.RedisCache, key string, value any, ttl int) {
	if err := redisCache.Save(context.WithoutCancel(ctx), key, value, ttl); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
	}
}

// InvalidateCaches moves each namespace to a new generation, so entries written by reads that
// started before the change are never served, then drops the old entries. It runs before the
// caller returns. Failures are logged and never reach the caller.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, namespaces ...string) {
	ctx = context.WithoutCancel(ctx)

	for _, namespace := range namespaces {
		if _, err := redisCache.Incr(ctx, CacheGenerationKey(namespace), CacheGenerationWindow); err != nil {
			log.Error().Err(err).Str("namespace", namespace).Msg("failed to advance cache generation")
		}

		if err := redisCache.Clear(ctx, BuildCachePattern(namespace)); err != nil {
			log.Error().Err(err).Str("namespace", namespace).Msg("failed to invalidate cache")
		}
	}
}
