package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"glomnidesigns.GO/cms"
	"glomnidesigns.GO/core/cache"
)

// Collection tags used to invalidate cached envelopes.
const (
	TagDesigns            = "designs"
	TagCategories         = "categories"
	TagInteriors          = "interiors"
	TagInteriorCategories = "interior-categories"
	TagPortfolios         = "portfolios"
)

var AllTags = []string{TagDesigns, TagCategories, TagInteriors, TagInteriorCategories, TagPortfolios}

const redisPrefix = "content:"

// EnvelopeCache keeps successful envelopes in the in-process tagged cache
// and, when a client is given, in redis as JSON.
type EnvelopeCache struct {
	local *cache.Cache
	rdb   *redis.Client
	ttl   int64
	log   *zap.Logger
}

// NewEnvelopeCache returns nil when ttlSeconds is not positive, which
// disables caching.
func NewEnvelopeCache(local *cache.Cache, rdb *redis.Client, ttlSeconds int64, log *zap.Logger) *EnvelopeCache {
	if ttlSeconds <= 0 {
		return nil
	}
	if local == nil {
		local = cache.NewCache()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &EnvelopeCache{local: local, rdb: rdb, ttl: ttlSeconds, log: log}
}

func lookup[T any](ctx context.Context, c *EnvelopeCache, key string) (cms.Result[T], bool) {
	if c == nil {
		return cms.Result[T]{}, false
	}
	if v, ok := c.local.Get(key); ok {
		if res, ok := v.(cms.Result[T]); ok {
			return res, true
		}
	}
	if c.rdb == nil {
		return cms.Result[T]{}, false
	}
	b, err := c.rdb.Get(ctx, redisPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return cms.Result[T]{}, false
	}
	var res cms.Result[T]
	if err := json.Unmarshal(b, &res); err != nil || !res.Success {
		return cms.Result[T]{}, false
	}
	return res, true
}

func store[T any](ctx context.Context, c *EnvelopeCache, key string, res cms.Result[T], tags ...string) {
	if c == nil || !res.Success {
		return
	}
	c.local.Set(key, res, c.ttl, tags)
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	ttl := time.Duration(c.ttl) * time.Second
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, redisPrefix+key, b, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, redisPrefix+"tag:"+tag, key)
		pipe.Expire(ctx, redisPrefix+"tag:"+tag, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

// Purge drops every envelope tagged with tag, or with any collection tag
// when tag is empty. It returns the number of in-process entries removed.
func (c *EnvelopeCache) Purge(ctx context.Context, tag string) int {
	if c == nil {
		return 0
	}
	tags := []string{tag}
	if tag == "" {
		tags = AllTags
	}
	n := 0
	for _, t := range tags {
		n += c.local.DeleteByTag(t)
		if c.rdb == nil {
			continue
		}
		setKey := redisPrefix + "tag:" + t
		keys, err := c.rdb.SMembers(ctx, setKey).Result()
		if err != nil {
			c.log.Warn("redis purge failed", zap.String("tag", t), zap.Error(err))
			continue
		}
		del := make([]string, 0, len(keys)+1)
		for _, k := range keys {
			del = append(del, redisPrefix+k)
		}
		del = append(del, setKey)
		if err := c.rdb.Del(ctx, del...).Err(); err != nil {
			c.log.Warn("redis purge failed", zap.String("tag", t), zap.Error(err))
		}
	}
	return n
}
