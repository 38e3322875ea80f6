// Package view holds the dashboard pages, the route registry that maps
// paths to them, and the guard that keeps protected pages behind an
// authenticated session.
package view

import (
	"context"

	"github.com/freshcart/store-console/internal/output"
)

// View renders one dashboard page.
type View interface {
	Title() string
	Render(ctx context.Context, p *output.Printer) error
}

// Refresher is implemented by pages that can bypass the cache and
// force-refetch their collection.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Registry resolves app paths to views; unknown paths fall through to the
// not-found view.
type Registry struct {
	routes   map[string]View
	notFound View
}

func NewRegistry(notFound View) *Registry {
	return &Registry{routes: make(map[string]View), notFound: notFound}
}

// Handle mounts a view at path, replacing any previous mount.
func (r *Registry) Handle(path string, v View) {
	r.routes[path] = v
}

// Resolve returns the view mounted at path, or the not-found view.
func (r *Registry) Resolve(path string) View {
	if v, ok := r.routes[path]; ok {
		return v
	}
	return r.notFound
}
