package ports

import (
	"context"
	"time"

	"github.com/freshcart/store-console/internal/core/domain"
)

// ProductInput carries the add/edit product form. ImagePath, when set,
// is uploaded as a multipart file alongside the fields.
type ProductInput struct {
	Name        string  `validate:"required"`
	Description string  `validate:"omitempty"`
	Price       float64 `validate:"required,gt=0"`
	Quantity    int     `validate:"gte=0"`
	Category    string  `validate:"required"`
	SKU         string  `validate:"required"`
	Barcode     string  `validate:"omitempty"`
	IsActive    bool
	ImagePath   string `validate:"omitempty,file"`
}

// CategoryInput carries the add-category form.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty" validate:"omitempty"`
}

// CustomerInput carries the add/edit customer form.
type CustomerInput struct {
	Name     string `json:"name"  validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty"`
	IsActive bool   `json:"isActive"`
}

// CouponInput carries the add-coupon form; the bounds mirror the API's
// schema (percentage discount, positive usage budget).
type CouponInput struct {
	Code       string    `json:"code"       validate:"required"`
	Name       string    `json:"name"       validate:"required"`
	Discount   int       `json:"discount"   validate:"required,min=1,max=100"`
	UsageLimit int       `json:"usageLimit" validate:"required,min=1"`
	ExpiryDate time.Time `json:"expiryDate" validate:"required"`
	IsActive   bool      `json:"isActive"`
}

// SettingsInput carries the store-settings form.
type SettingsInput struct {
	StoreName    string `json:"storeName" validate:"required"`
	Description  string `json:"description,omitempty" validate:"omitempty"`
	Address      string `json:"address,omitempty" validate:"omitempty"`
	ContactEmail string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone,omitempty" validate:"omitempty"`
}

// ProductService is the products page: list with cache, create (multipart),
// update, delete and stock adjustment. Every mutation invalidates only the
// products cache key.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Refetch(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, input ProductInput) error
	Update(ctx context.Context, id string, input ProductInput) error
	Delete(ctx context.Context, id string) error
	// AdjustStock PATCHes only the quantity field (stock page).
	AdjustStock(ctx context.Context, id string, quantity int) error
}

// CategoryService is the categories page.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Refetch(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, input CategoryInput) error
	Delete(ctx context.Context, id string) error
}

// OrderService is the orders page; mutation is limited to status changes.
type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Refetch(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// CustomerService is the customers page.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Refetch(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, input CustomerInput) error
	Update(ctx context.Context, id string, input CustomerInput) error
	Delete(ctx context.Context, id string) error
}

// CouponService is the coupons page.
type CouponService interface {
	List(ctx context.Context) ([]domain.Coupon, error)
	Refetch(ctx context.Context) ([]domain.Coupon, error)
	Create(ctx context.Context, input CouponInput) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// SettingsService is the single-document store profile.
type SettingsService interface {
	Get(ctx context.Context) (*domain.StoreSettings, error)
	Save(ctx context.Context, input SettingsInput) (*domain.StoreSettings, error)
}
