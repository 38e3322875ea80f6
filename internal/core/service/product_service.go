package service

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
)

// ProductService backs the products and stock pages.
type ProductService struct {
	coll   collection[domain.Product]
	client ports.Requester
	log    zerolog.Logger
}

var _ ports.ProductService = (*ProductService)(nil)

func NewProductService(client ports.Requester, cache ports.CollectionCache, log zerolog.Logger) *ProductService {
	return &ProductService{
		coll:   newCollection[domain.Product](keyProducts, "/products/get", client, cache, log),
		client: client,
		log:    log,
	}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.coll.get(ctx)
}

func (s *ProductService) Refetch(ctx context.Context) ([]domain.Product, error) {
	return s.coll.refetch(ctx)
}

// Create posts the product as multipart form data so an image file can
// ride along with the record fields.
func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	fields := map[string]string{
		"name":        input.Name,
		"description": input.Description,
		"price":       strconv.FormatFloat(input.Price, 'f', -1, 64),
		"quantity":    strconv.Itoa(input.Quantity),
		"category":    input.Category,
		"sku":         input.SKU,
		"isActive":    strconv.FormatBool(input.IsActive),
	}
	if input.Barcode != "" {
		fields["barcode"] = input.Barcode
	}

	var file *ports.FormFile
	if input.ImagePath != "" {
		f, err := os.Open(input.ImagePath)
		if err != nil {
			return err
		}
		defer f.Close()
		file = &ports.FormFile{Field: "image", Filename: filepath.Base(input.ImagePath), Reader: f}
	}

	resp, err := s.client.RequestMultipart(ctx, "/products/create", fields, file)
	if err != nil {
		return err
	}
	drain(resp)
	s.coll.invalidate(ctx)
	return nil
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.ProductInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	body := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"quantity":    input.Quantity,
		"category":    input.Category,
		"sku":         input.SKU,
		"isActive":    input.IsActive,
	}
	return s.coll.mutate(ctx, http.MethodPatch, "/products/"+id, body)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.coll.mutate(ctx, http.MethodDelete, "/products/"+id, nil)
}

// AdjustStock patches only the quantity, the stock page's single action.
func (s *ProductService) AdjustStock(ctx context.Context, id string, quantity int) error {
	if quantity < 0 {
		quantity = 0
	}
	return s.coll.mutate(ctx, http.MethodPatch, "/products/"+id, map[string]any{"quantity": quantity})
}
