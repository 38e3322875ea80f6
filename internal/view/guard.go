package view

import (
	"context"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/navigation"
	"github.com/freshcart/store-console/internal/output"
)

// landingPath is where unauthenticated visitors are sent.
const landingPath = "/auth"

// Guard wraps protected views. While the initial session check runs it
// renders a loading placeholder and never redirects; once the session
// resolves to anonymous it issues exactly one redirect to the landing
// view; authenticated sessions render the wrapped view.
type Guard struct {
	sessions ports.SessionService
	router   *navigation.Router
}

func NewGuard(sessions ports.SessionService, router *navigation.Router) *Guard {
	return &Guard{sessions: sessions, router: router}
}

// Protect wraps v behind the session check.
func (g *Guard) Protect(v View) View {
	return &guardedView{guard: g, inner: v}
}

type guardedView struct {
	guard *Guard
	inner View
}

func (v *guardedView) Title() string {
	return v.inner.Title()
}

func (v *guardedView) Render(ctx context.Context, p *output.Printer) error {
	switch v.guard.sessions.Session().Status {
	case domain.StatusInitializing:
		// Loading and redirect are mutually exclusive: never bounce a
		// visitor whose token is still being validated.
		p.Info("Checking session…")
		return nil
	case domain.StatusAnonymous:
		v.guard.router.Navigate(landingPath)
		return nil
	}
	return v.inner.Render(ctx, p)
}

// Refresh forwards to the wrapped view when authenticated.
func (v *guardedView) Refresh(ctx context.Context) error {
	if !v.guard.sessions.Session().Authenticated() {
		return nil
	}
	if r, ok := v.inner.(Refresher); ok {
		return r.Refresh(ctx)
	}
	return nil
}
