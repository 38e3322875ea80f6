package ports

import "context"

// TokenStore is the single durable slot holding the bearer token.
// An empty string with a nil error means no token is stored (anonymous).
//
// The HTTP client clears the slot on 401 responses; the session service
// clears it on logout and failed validation. Nothing else writes to it.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
