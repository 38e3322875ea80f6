package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/freshcart/store-console/internal/core/domain"
)

// ---------------------------------------------------------------------------
// decodeList
// ---------------------------------------------------------------------------

func TestDecodeList_BareArray(t *testing.T) {
	items, err := decodeList[domain.Product]([]byte(`[{"_id":"p1","name":"Milk"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Milk" {
		t.Errorf("wrong decode: %+v", items)
	}
}

func TestDecodeList_Envelope(t *testing.T) {
	items, err := decodeList[domain.Order]([]byte(`{"success":true,"data":[{"_id":"o1","status":"pending"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Status != domain.OrderPending {
		t.Errorf("wrong decode: %+v", items)
	}
}

func TestDecodeList_EmptyShapes(t *testing.T) {
	for _, payload := range []string{"", "null", "[]", `{"success":true}`, `{"data":null}`} {
		items, err := decodeList[domain.Customer]([]byte(payload))
		if err != nil {
			t.Errorf("payload %q: unexpected error %v", payload, err)
		}
		if len(items) != 0 {
			t.Errorf("payload %q: expected empty, got %+v", payload, items)
		}
	}
}

func TestDecodeList_Malformed(t *testing.T) {
	if _, err := decodeList[domain.Product]([]byte(`[{"name":`)); err == nil {
		t.Error("expected decode error for truncated JSON")
	}
}

// ---------------------------------------------------------------------------
// collection controller
// ---------------------------------------------------------------------------

func newCollectionFixture() (collection[domain.Product], *stubRequester, *stubCache) {
	tokens := &stubTokenStore{}
	cache := newStubCache()
	req := newStubRequester(tokens)
	coll := newCollection[domain.Product](keyProducts, "/products/get", req, cache, noplog)
	return coll, req, cache
}

func TestCollection_Get_FetchesAndCaches(t *testing.T) {
	coll, req, cache := newCollectionFixture()
	req.on(http.MethodGet, "/products/get", http.StatusOK, `[{"_id":"p1","name":"Milk"}]`)

	items, err := coll.get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if _, ok := cache.entries[keyProducts]; !ok {
		t.Error("fetch must populate the cache")
	}
}

func TestCollection_Get_ServesFromCache(t *testing.T) {
	coll, req, cache := newCollectionFixture()
	cache.entries[keyProducts] = []byte(`[{"_id":"p1","name":"Milk"}]`)

	items, err := coll.get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if len(req.calls) != 0 {
		t.Errorf("cached read must not hit the API, got %v", req.calls)
	}
}

func TestCollection_Get_DropsStaleCacheEntry(t *testing.T) {
	coll, req, cache := newCollectionFixture()
	cache.entries[keyProducts] = []byte(`{"broken`)
	req.on(http.MethodGet, "/products/get", http.StatusOK, `[]`)

	if _, err := coll.get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.calls) != 1 {
		t.Errorf("undecodable entry must trigger a refetch, got %v", req.calls)
	}
}

func TestCollection_Refetch_BypassesCache(t *testing.T) {
	coll, req, cache := newCollectionFixture()
	cache.entries[keyProducts] = []byte(`[{"_id":"stale","name":"Old"}]`)
	req.on(http.MethodGet, "/products/get", http.StatusOK, `[{"_id":"p2","name":"Fresh"}]`)

	items, err := coll.refetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Fresh" {
		t.Errorf("refetch must hit the API, got %+v", items)
	}
	if string(cache.entries[keyProducts]) != `[{"_id":"p2","name":"Fresh"}]` {
		t.Error("refetch must refresh the cache entry")
	}
}

func TestCollection_Mutate_InvalidatesOwnKeyOnly(t *testing.T) {
	coll, req, cache := newCollectionFixture()
	cache.entries[keyProducts] = []byte(`[]`)
	cache.entries[keyCustomers] = []byte(`[]`)
	req.on(http.MethodDelete, "/products/p1", http.StatusOK, `{"success":true}`)

	if err := coll.mutate(context.Background(), http.MethodDelete, "/products/p1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := cache.entries[keyProducts]; ok {
		t.Error("mutation must invalidate the products key")
	}
	if _, ok := cache.entries[keyCustomers]; !ok {
		t.Error("mutation must leave unrelated keys alone")
	}
	if len(cache.invalidations) != 1 || cache.invalidations[0] != keyProducts {
		t.Errorf("expected exactly one invalidation of %q, got %v", keyProducts, cache.invalidations)
	}
}

func TestCollection_Mutate_FailureKeepsCache(t *testing.T) {
	coll, req, cache := newCollectionFixture()
	cache.entries[keyProducts] = []byte(`[]`)
	req.on(http.MethodDelete, "/products/p1", http.StatusNotFound, "product not found")

	if err := coll.mutate(context.Background(), http.MethodDelete, "/products/p1", nil); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := cache.entries[keyProducts]; !ok {
		t.Error("failed mutation must not invalidate the cache")
	}
}

// ---------------------------------------------------------------------------
// Order status validation
// ---------------------------------------------------------------------------

func TestOrderService_UpdateStatus_RejectsUnknown(t *testing.T) {
	tokens := &stubTokenStore{}
	req := newStubRequester(tokens)
	svc := NewOrderService(req, newStubCache(), noplog)

	err := svc.UpdateStatus(context.Background(), "o1", "teleported")
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
	if len(req.calls) != 0 {
		t.Errorf("invalid status must never hit the API, got %v", req.calls)
	}
}

func TestOrderService_UpdateStatus_Valid(t *testing.T) {
	tokens := &stubTokenStore{}
	req := newStubRequester(tokens)
	cache := newStubCache()
	cache.entries[keyOrders] = []byte(`[]`)
	svc := NewOrderService(req, cache, noplog)
	req.on(http.MethodPatch, "/orders/o1", http.StatusOK, `{"status":"completed"}`)

	if err := svc.UpdateStatus(context.Background(), "o1", domain.OrderCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.entries[keyOrders]; ok {
		t.Error("status change must invalidate the orders key")
	}
}
