package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/zjrosen/xroot/internal/cachemanager"
	"github.com/zjrosen/xroot/internal/log"
)

type request struct {
	id    string
	input string
}

// CacheKey is the cache key for an execution: hex(sha256(id + "\x00" + input)).
func CacheKey(id, input string) string {
	h := sha256.New()
	h.Write([]byte(id))
	h.Write([]byte{0})
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// NewCacheMiddleware serves repeated executions from cache. Only successful
// results are stored.
func NewCacheMiddleware(cache cachemanager.CacheManager[string, string], ttl time.Duration) Middleware {
	return func(next Executor) Executor {
		memo := cachemanager.NewMemo[string, string, request](cache,
			func(ctx context.Context, r request) (string, error) {
				return next.Execute(ctx, r.id, r.input)
			},
		)
		return ExecutorFunc(func(ctx context.Context, id, input string) (string, error) {
			out, hit, err := memo.Get(ctx, CacheKey(id, input), request{id: id, input: input}, ttl)
			if err != nil {
				return "", err
			}
			if hit {
				hits, misses := memo.Stats()
				log.Debug(log.CatCache, "served from cache", "op", id, "hits", hits, "misses", misses)
			}
			return out, nil
		})
	}
}
