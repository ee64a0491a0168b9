// Package cache holds a small read-through cache for public product detail
// lookups. It is optional: a nil *ProductCache (no REDIS_ADDR configured)
// turns every call into a no-op and the handlers fall through to the store.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shchutski73/sport-store/serializers"
)

const productTTL = time.Minute

type ProductCache struct {
	client *redis.Client
}

func NewProductCache(client *redis.Client) *ProductCache {
	if client == nil {
		return nil
	}
	return &ProductCache{client: client}
}

func productKey(slugOrID string) string {
	return "product:" + slugOrID
}

// Get returns the cached product detail for a slug-or-id path parameter.
func (pc *ProductCache) Get(ctx context.Context, slugOrID string) (serializers.ProductResponse, bool) {
	var resp serializers.ProductResponse
	if pc == nil {
		return resp, false
	}
	cached, err := pc.client.Get(ctx, productKey(slugOrID)).Result()
	if err != nil {
		return resp, false
	}
	if err := json.Unmarshal([]byte(cached), &resp); err != nil {
		return resp, false
	}
	return resp, true
}

// Set stores a product detail response under the slug-or-id it was requested by.
func (pc *ProductCache) Set(ctx context.Context, slugOrID string, resp serializers.ProductResponse) {
	if pc == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	pc.client.Set(ctx, productKey(slugOrID), data, productTTL)
}

// Invalidate drops cached entries after an admin mutation. Callers pass both
// the product's slug and its numeric id since a detail request may use either.
func (pc *ProductCache) Invalidate(ctx context.Context, slugOrIDs ...string) {
	if pc == nil || len(slugOrIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(slugOrIDs))
	for _, key := range slugOrIDs {
		keys = append(keys, productKey(key))
	}
	pc.client.Del(ctx, keys...)
}
