package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
)

// CustomerService backs the customers page.
type CustomerService struct {
	coll collection[domain.Customer]
}

var _ ports.CustomerService = (*CustomerService)(nil)

func NewCustomerService(client ports.Requester, cache ports.CollectionCache, log zerolog.Logger) *CustomerService {
	return &CustomerService{
		coll: newCollection[domain.Customer](keyCustomers, "/customers/get", client, cache, log),
	}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.coll.get(ctx)
}

func (s *CustomerService) Refetch(ctx context.Context) ([]domain.Customer, error) {
	return s.coll.refetch(ctx)
}

func (s *CustomerService) Create(ctx context.Context, input ports.CustomerInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	return s.coll.mutate(ctx, http.MethodPost, "/customers/create", input)
}

func (s *CustomerService) Update(ctx context.Context, id string, input ports.CustomerInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	return s.coll.mutate(ctx, http.MethodPatch, "/customers/"+id, input)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.coll.mutate(ctx, http.MethodDelete, "/customers/"+id, nil)
}
