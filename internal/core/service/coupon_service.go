package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
)

// CouponService backs the coupons page.
type CouponService struct {
	coll collection[domain.Coupon]
}

var _ ports.CouponService = (*CouponService)(nil)

func NewCouponService(client ports.Requester, cache ports.CollectionCache, log zerolog.Logger) *CouponService {
	return &CouponService{
		coll: newCollection[domain.Coupon](keyCoupons, "/coupons/get", client, cache, log),
	}
}

func (s *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.coll.get(ctx)
}

func (s *CouponService) Refetch(ctx context.Context) ([]domain.Coupon, error) {
	return s.coll.refetch(ctx)
}

func (s *CouponService) Create(ctx context.Context, input ports.CouponInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	return s.coll.mutate(ctx, http.MethodPost, "/coupons/create", input)
}

func (s *CouponService) SetActive(ctx context.Context, id string, active bool) error {
	return s.coll.mutate(ctx, http.MethodPatch, "/coupons/"+id, map[string]bool{"isActive": active})
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.coll.mutate(ctx, http.MethodDelete, "/coupons/"+id, nil)
}
