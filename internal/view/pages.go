package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/output"
)

// LowStockThreshold marks products the stock page flags for reorder.
const LowStockThreshold = 10

// ProductsView is the product catalog page with client-side search and
// category filtering, like the original products screen.
type ProductsView struct {
	products ports.ProductService

	search   string
	category string
}

func NewProductsView(products ports.ProductService) *ProductsView {
	return &ProductsView{products: products}
}

func (v *ProductsView) Title() string { return "Product Management" }

// SetFilter narrows the rendered catalog; empty values clear the filter.
func (v *ProductsView) SetFilter(search, category string) {
	v.search = strings.ToLower(search)
	v.category = category
}

func (v *ProductsView) Render(ctx context.Context, p *output.Printer) error {
	items, err := v.products.List(ctx)
	if err != nil {
		return err
	}

	p.Header(v.Title())
	t := output.NewTable(p.Out(), []string{"ID", "Name", "SKU", "Category", "Price", "Qty", "Active"})
	shown := 0
	for _, item := range items {
		if v.search != "" && !strings.Contains(strings.ToLower(item.Name), v.search) {
			continue
		}
		if v.category != "" && v.category != "all" && item.Category != v.category {
			continue
		}
		t.AddRow([]string{
			item.ID,
			item.Name,
			item.SKU,
			item.Category,
			fmt.Sprintf("$%.2f", item.Price),
			strconv.Itoa(item.Quantity),
			yesNo(item.IsActive),
		})
		shown++
	}
	t.Render()
	p.Print("%d of %d products", shown, len(items))
	return nil
}

func (v *ProductsView) Refresh(ctx context.Context) error {
	_, err := v.products.Refetch(ctx)
	return err
}

// StockView is the stock-management page: quantities with low-stock flags.
type StockView struct {
	products ports.ProductService
}

func NewStockView(products ports.ProductService) *StockView {
	return &StockView{products: products}
}

func (v *StockView) Title() string { return "Stock Management" }

func (v *StockView) Render(ctx context.Context, p *output.Printer) error {
	items, err := v.products.List(ctx)
	if err != nil {
		return err
	}

	p.Header(v.Title())
	t := output.NewTable(p.Out(), []string{"ID", "Name", "SKU", "Qty", "Status"})
	low := 0
	for _, item := range items {
		status := "ok"
		if item.LowStock(LowStockThreshold) {
			status = "LOW"
			low++
		}
		t.AddRow([]string{item.ID, item.Name, item.SKU, strconv.Itoa(item.Quantity), status})
	}
	t.Render()
	if low > 0 {
		p.Warning("%d product(s) at or below the reorder threshold (%d)", low, LowStockThreshold)
	}
	return nil
}

func (v *StockView) Refresh(ctx context.Context) error {
	_, err := v.products.Refetch(ctx)
	return err
}

// OrdersView is the orders page.
type OrdersView struct {
	orders ports.OrderService
}

func NewOrdersView(orders ports.OrderService) *OrdersView {
	return &OrdersView{orders: orders}
}

func (v *OrdersView) Title() string { return "Orders" }

func (v *OrdersView) Render(ctx context.Context, p *output.Printer) error {
	items, err := v.orders.List(ctx)
	if err != nil {
		return err
	}

	p.Header(v.Title())
	t := output.NewTable(p.Out(), []string{"ID", "Customer", "Items", "Total", "Status", "Placed"})
	for _, o := range items {
		t.AddRow([]string{
			o.ID,
			o.CustomerName,
			strconv.Itoa(len(o.Items)),
			fmt.Sprintf("$%.2f", o.Total),
			o.Status,
			formatDate(o.CreatedAt),
		})
	}
	t.Render()
	return nil
}

func (v *OrdersView) Refresh(ctx context.Context) error {
	_, err := v.orders.Refetch(ctx)
	return err
}

// CustomersView is the customers page.
type CustomersView struct {
	customers ports.CustomerService
}

func NewCustomersView(customers ports.CustomerService) *CustomersView {
	return &CustomersView{customers: customers}
}

func (v *CustomersView) Title() string { return "Customers" }

func (v *CustomersView) Render(ctx context.Context, p *output.Printer) error {
	items, err := v.customers.List(ctx)
	if err != nil {
		return err
	}

	p.Header(v.Title())
	t := output.NewTable(p.Out(), []string{"ID", "Name", "Email", "Phone", "Active"})
	for _, c := range items {
		t.AddRow([]string{c.ID, c.Name, c.Email, c.Phone, yesNo(c.IsActive)})
	}
	t.Render()
	return nil
}

func (v *CustomersView) Refresh(ctx context.Context) error {
	_, err := v.customers.Refetch(ctx)
	return err
}

// CouponsView is the coupons page, flagging expired and exhausted codes.
type CouponsView struct {
	coupons ports.CouponService
	now     func() time.Time
}

func NewCouponsView(coupons ports.CouponService) *CouponsView {
	return &CouponsView{coupons: coupons, now: time.Now}
}

func (v *CouponsView) Title() string { return "Coupons" }

func (v *CouponsView) Render(ctx context.Context, p *output.Printer) error {
	items, err := v.coupons.List(ctx)
	if err != nil {
		return err
	}

	p.Header(v.Title())
	t := output.NewTable(p.Out(), []string{"ID", "Code", "Name", "Discount", "Used", "Expires", "State"})
	for _, c := range items {
		state := "active"
		switch {
		case !c.IsActive:
			state = "disabled"
		case c.Expired(v.now()):
			state = "expired"
		case c.Exhausted():
			state = "exhausted"
		}
		t.AddRow([]string{
			c.ID,
			c.Code,
			c.Name,
			fmt.Sprintf("%d%%", c.Discount),
			fmt.Sprintf("%d/%d", c.UsageCount, c.UsageLimit),
			formatDate(c.ExpiryDate),
			state,
		})
	}
	t.Render()
	return nil
}

func (v *CouponsView) Refresh(ctx context.Context) error {
	_, err := v.coupons.Refetch(ctx)
	return err
}

// CategoriesView is the categories page.
type CategoriesView struct {
	categories ports.CategoryService
}

func NewCategoriesView(categories ports.CategoryService) *CategoriesView {
	return &CategoriesView{categories: categories}
}

func (v *CategoriesView) Title() string { return "Categories" }

func (v *CategoriesView) Render(ctx context.Context, p *output.Printer) error {
	items, err := v.categories.List(ctx)
	if err != nil {
		return err
	}

	p.Header(v.Title())
	t := output.NewTable(p.Out(), []string{"ID", "Name", "Description"})
	for _, c := range items {
		t.AddRow([]string{c.ID, c.Name, c.Description})
	}
	t.Render()
	return nil
}

func (v *CategoriesView) Refresh(ctx context.Context) error {
	_, err := v.categories.Refetch(ctx)
	return err
}

// SettingsView is the store-settings page.
type SettingsView struct {
	settings ports.SettingsService
}

func NewSettingsView(settings ports.SettingsService) *SettingsView {
	return &SettingsView{settings: settings}
}

func (v *SettingsView) Title() string { return "Store Settings" }

func (v *SettingsView) Render(ctx context.Context, p *output.Printer) error {
	s, err := v.settings.Get(ctx)
	if err != nil {
		return err
	}

	p.Header(v.Title())
	p.Print("Store name:     %s", s.StoreName)
	p.Print("Description:    %s", s.Description)
	p.Print("Address:        %s", s.Address)
	p.Print("Contact email:  %s", s.ContactEmail)
	p.Print("Contact phone:  %s", s.ContactPhone)
	return nil
}

// AuthView is the anonymous landing page.
type AuthView struct {
	sessions ports.SessionService
}

func NewAuthView(sessions ports.SessionService) *AuthView {
	return &AuthView{sessions: sessions}
}

func (v *AuthView) Title() string { return "Sign in" }

func (v *AuthView) Render(_ context.Context, p *output.Printer) error {
	p.Header(v.Title())
	p.Print("Access your grocery store management system.")
	p.Print("Commands: login <username> <password> | register <username> <password> [role]")
	if err := v.sessions.Session().LastError; err != nil {
		p.Error("last attempt failed: %v", err)
	}
	return nil
}

// NotFoundView is the catch-all page.
type NotFoundView struct{}

func (NotFoundView) Title() string { return "Not Found" }

func (NotFoundView) Render(_ context.Context, p *output.Printer) error {
	p.Error("404: this page does not exist")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
