package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/ports"
)

// Cache keys, one per dashboard page resource.
const (
	keyProducts   = "products"
	keyCategories = "categories"
	keyOrders     = "orders"
	keyCustomers  = "customers"
	keyCoupons    = "coupons"
	keySettings   = "store-settings"
	keyIdentity   = "identity"
)

// collection is the shared fetch/cache/mutate controller every page
// service is built on: read through the cache, refetch on demand, and
// invalidate exactly its own key after a successful mutation.
type collection[T any] struct {
	key    string
	path   string
	client ports.Requester
	cache  ports.CollectionCache
	log    zerolog.Logger
}

func newCollection[T any](key, path string, client ports.Requester, cache ports.CollectionCache, log zerolog.Logger) collection[T] {
	return collection[T]{key: key, path: path, client: client, cache: cache, log: log}
}

// get returns the collection, serving from the cache when the key is
// fresh. A payload that no longer decodes is dropped and refetched.
func (c *collection[T]) get(ctx context.Context) ([]T, error) {
	payload, ok, err := c.cache.Get(ctx, c.key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("cache read failed, refetching")
	} else if ok {
		items, derr := decodeList[T](payload)
		if derr == nil {
			return items, nil
		}
		c.log.Warn().Err(derr).Str("key", c.key).Msg("stale cache entry dropped")
		_ = c.cache.Invalidate(ctx, c.key)
	}
	return c.refetch(ctx)
}

// refetch always hits the API and refreshes the cache entry.
func (c *collection[T]) refetch(ctx context.Context) ([]T, error) {
	payload, err := c.client.QueryFetch(ctx, c.path, ports.On401Fail)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[T](payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if cerr := c.cache.Set(ctx, c.key, payload); cerr != nil {
		c.log.Warn().Err(cerr).Str("key", c.key).Msg("cache write failed")
	}
	return items, nil
}

// invalidate marks this collection stale so the next read refetches.
func (c *collection[T]) invalidate(ctx context.Context) {
	if err := c.cache.Invalidate(ctx, c.key); err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("cache invalidation failed")
	}
}

// mutate issues a write and, on success, invalidates this collection's
// key and no other. The response body is discarded; readers pick up the
// new state on their next fetch.
func (c *collection[T]) mutate(ctx context.Context, method, path string, body any) error {
	resp, err := c.client.Request(ctx, method, path, body)
	if err != nil {
		return err
	}
	drain(resp)
	c.invalidate(ctx)
	return nil
}

// decodeList accepts both list shapes the API serves: a bare JSON array
// and a {success, data: [...]} envelope. A missing data field decodes to
// an empty collection.
func decodeList[T any](payload []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var env struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
}
