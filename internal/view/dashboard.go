package view

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/output"
)

// DashboardView is the landing page for authenticated sessions: headline
// counts and revenue, fetched concurrently across the three collections.
type DashboardView struct {
	products  ports.ProductService
	orders    ports.OrderService
	customers ports.CustomerService
}

func NewDashboardView(products ports.ProductService, orders ports.OrderService, customers ports.CustomerService) *DashboardView {
	return &DashboardView{products: products, orders: orders, customers: customers}
}

func (v *DashboardView) Title() string { return "Dashboard" }

func (v *DashboardView) Render(ctx context.Context, p *output.Printer) error {
	var (
		products  []domain.Product
		orders    []domain.Order
		customers []domain.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = v.products.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = v.orders.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = v.customers.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	var revenue float64
	pending := 0
	for _, o := range orders {
		if o.Status != domain.OrderCancelled {
			revenue += o.Total
		}
		if o.Status == domain.OrderPending {
			pending++
		}
	}
	lowStock := 0
	for _, pr := range products {
		if pr.LowStock(LowStockThreshold) {
			lowStock++
		}
	}

	p.Header(v.Title())
	t := output.NewTable(p.Out(), []string{"Metric", "Value"})
	t.AddRow([]string{"Products", fmt.Sprintf("%d", len(products))})
	t.AddRow([]string{"Low stock", fmt.Sprintf("%d", lowStock)})
	t.AddRow([]string{"Orders", fmt.Sprintf("%d", len(orders))})
	t.AddRow([]string{"Pending orders", fmt.Sprintf("%d", pending)})
	t.AddRow([]string{"Customers", fmt.Sprintf("%d", len(customers))})
	t.AddRow([]string{"Revenue", fmt.Sprintf("$%.2f", revenue)})
	t.Render()
	return nil
}

func (v *DashboardView) Refresh(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := v.products.Refetch(gctx); return err })
	g.Go(func() error { _, err := v.orders.Refetch(gctx); return err })
	g.Go(func() error { _, err := v.customers.Refetch(gctx); return err })
	return g.Wait()
}
