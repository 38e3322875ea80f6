package view

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/navigation"
	"github.com/freshcart/store-console/internal/output"
)

// fakeSessions serves a fixed session snapshot.
type fakeSessions struct {
	session domain.Session
}

func (f *fakeSessions) Session() domain.Session { return f.session }
func (f *fakeSessions) Initialize(context.Context) {
	f.session = domain.Session{Status: domain.StatusAnonymous}
}
func (f *fakeSessions) Login(context.Context, ports.LoginInput) (*domain.Identity, error) {
	return nil, nil
}
func (f *fakeSessions) Logout(context.Context) {}
func (f *fakeSessions) Register(context.Context, ports.RegisterInput) (*domain.Identity, error) {
	return nil, nil
}

// recordingView counts how often it was rendered and refreshed.
type recordingView struct {
	renders   int
	refreshes int
}

func (v *recordingView) Title() string { return "Recorded" }

func (v *recordingView) Render(context.Context, *output.Printer) error {
	v.renders++
	return nil
}

func (v *recordingView) Refresh(context.Context) error {
	v.refreshes++
	return nil
}

func testPrinter() (*output.Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return output.NewPrinterWithWriters(&buf, &buf, false), &buf
}

func TestGuard_InitializingShowsLoadingWithoutRedirect(t *testing.T) {
	sessions := &fakeSessions{session: domain.Session{Status: domain.StatusInitializing}}
	router := navigation.New("/products")
	inner := &recordingView{}
	guarded := NewGuard(sessions, router).Protect(inner)
	printer, buf := testPrinter()

	err := guarded.Render(context.Background(), printer)

	require.NoError(t, err)
	assert.Equal(t, 0, inner.renders, "inner view must not render while the session is unresolved")
	assert.Equal(t, "/products", router.Current(), "no redirect while the token check runs")
	assert.Contains(t, buf.String(), "Checking session")
}

func TestGuard_AnonymousRedirectsOnce(t *testing.T) {
	sessions := &fakeSessions{session: domain.Session{Status: domain.StatusAnonymous}}
	router := navigation.New("/products")
	moves := 0
	router.Subscribe(func(string) { moves++ })
	inner := &recordingView{}
	guarded := NewGuard(sessions, router).Protect(inner)
	printer, _ := testPrinter()

	err := guarded.Render(context.Background(), printer)

	require.NoError(t, err)
	assert.Equal(t, 0, inner.renders, "anonymous visitors never see the protected view")
	assert.Equal(t, "/auth", router.Current())
	assert.Equal(t, 1, moves, "exactly one redirect")

	// Rendering again while already on the landing path must not stack
	// another history entry.
	err = guarded.Render(context.Background(), printer)
	require.NoError(t, err)
	assert.Equal(t, 1, moves)
}

func TestGuard_AuthenticatedRendersInner(t *testing.T) {
	identity := domain.Identity{ID: "u1", Username: "alice", Role: "admin"}
	sessions := &fakeSessions{session: domain.Session{Status: domain.StatusAuthenticated, Identity: &identity}}
	router := navigation.New("/products")
	inner := &recordingView{}
	guarded := NewGuard(sessions, router).Protect(inner)
	printer, _ := testPrinter()

	err := guarded.Render(context.Background(), printer)

	require.NoError(t, err)
	assert.Equal(t, 1, inner.renders)
	assert.Equal(t, "/products", router.Current())
}

func TestGuard_TitleDelegates(t *testing.T) {
	sessions := &fakeSessions{session: domain.Session{Status: domain.StatusAuthenticated}}
	guarded := NewGuard(sessions, navigation.New("/")).Protect(&recordingView{})
	assert.Equal(t, "Recorded", guarded.Title())
}

func TestGuard_RefreshOnlyWhenAuthenticated(t *testing.T) {
	sessions := &fakeSessions{session: domain.Session{Status: domain.StatusAnonymous}}
	router := navigation.New("/")
	inner := &recordingView{}
	guarded := NewGuard(sessions, router).Protect(inner).(Refresher)

	require.NoError(t, guarded.Refresh(context.Background()))
	assert.Equal(t, 0, inner.refreshes, "anonymous refresh is a no-op")

	identity := domain.Identity{Username: "alice"}
	sessions.session = domain.Session{Status: domain.StatusAuthenticated, Identity: &identity}
	require.NoError(t, guarded.Refresh(context.Background()))
	assert.Equal(t, 1, inner.refreshes)
}
