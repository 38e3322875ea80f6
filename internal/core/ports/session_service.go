package ports

import (
	"context"

	"github.com/freshcart/store-console/internal/core/domain"
)

// LoginInput carries the credentials from the login form.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries the registration form. Role defaults to admin,
// matching the dashboard's register tab.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user"`
}

// SessionService is the auth session state machine. State moves
// initializing → authenticated | anonymous, and only inside the three
// operations' completion paths.
type SessionService interface {
	// Session returns the current snapshot.
	Session() domain.Session

	// Initialize validates a stored token once at startup. It never
	// returns an error; failures land the session in anonymous with the
	// token cleared.
	Initialize(ctx context.Context)

	// Login authenticates, persists the returned token and returns the
	// identity. On failure the token is cleared, the session stays
	// anonymous with LastError set, and the error is returned for
	// field-level feedback.
	Login(ctx context.Context, input LoginInput) (*domain.Identity, error)

	// Logout tells the server best-effort, then unconditionally clears
	// identity, token and all cached collections.
	Logout(ctx context.Context)

	// Register creates an account and, when the server returns a token,
	// behaves like Login.
	Register(ctx context.Context, input RegisterInput) (*domain.Identity, error)
}
