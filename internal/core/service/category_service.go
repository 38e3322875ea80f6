package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
)

// CategoryService backs the categories page.
type CategoryService struct {
	coll collection[domain.Category]
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(client ports.Requester, cache ports.CollectionCache, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		coll: newCollection[domain.Category](keyCategories, "/categories/get", client, cache, log),
	}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.coll.get(ctx)
}

func (s *CategoryService) Refetch(ctx context.Context) ([]domain.Category, error) {
	return s.coll.refetch(ctx)
}

func (s *CategoryService) Create(ctx context.Context, input ports.CategoryInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	return s.coll.mutate(ctx, http.MethodPost, "/categories/create", input)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.coll.mutate(ctx, http.MethodDelete, "/categories/"+id, nil)
}
