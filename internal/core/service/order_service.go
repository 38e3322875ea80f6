package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
)

// OrderService backs the orders page. Orders are created by the
// storefront, so the only mutation here is the status transition.
type OrderService struct {
	coll collection[domain.Order]
}

var _ ports.OrderService = (*OrderService)(nil)

func NewOrderService(client ports.Requester, cache ports.CollectionCache, log zerolog.Logger) *OrderService {
	return &OrderService{
		coll: newCollection[domain.Order](keyOrders, "/orders/get", client, cache, log),
	}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.coll.get(ctx)
}

func (s *OrderService) Refetch(ctx context.Context) ([]domain.Order, error) {
	return s.coll.refetch(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status %q", status)
	}
	return s.coll.mutate(ctx, http.MethodPatch, "/orders/"+id, map[string]string{"status": status})
}
