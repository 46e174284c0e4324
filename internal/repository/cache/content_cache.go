package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"guruvela-be/internal/constant"
	"guruvela-be/pkg/content"
)

// ContentCache keeps resolved content pages in Redis, keyed by slug and
// language. A nil client turns every call into a miss.
type ContentCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewContentCache(rdb *redis.Client, ttl time.Duration) *ContentCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ContentCache{rdb: rdb, ttl: ttl}
}

func pageKey(slug, lang string) string {
	return constant.ContentPageCacheKeyPrefix + slug + ":" + lang
}

// GetPage returns nil, nil on a miss.
func (c *ContentCache) GetPage(ctx context.Context, slug, lang string) (*content.Page, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	raw, err := c.rdb.Get(ctx, pageKey(slug, lang)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var page content.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *ContentCache) SetPage(ctx context.Context, page *content.Page) error {
	if c == nil || c.rdb == nil || page == nil {
		return nil
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, pageKey(page.Slug, page.Language), raw, c.ttl).Err()
}

func (c *ContentCache) Invalidate(ctx context.Context, slug string, langs ...string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	keys := make([]string, 0, len(langs))
	for _, lang := range langs {
		keys = append(keys, pageKey(slug, lang))
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
