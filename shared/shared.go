package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"tzatlas/shared/cache"
)

// BuildCacheKey joins key parts with the cache namespace separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix, logging
// instead of failing since a stale cache is not a caller-visible error.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
