package domain

// SessionStatus is the lifecycle state of the console's auth session.
type SessionStatus string

const (
	// StatusInitializing holds from startup until the stored token has
	// been validated (or found absent).
	StatusInitializing SessionStatus = "initializing"
	// StatusAuthenticated means a server-confirmed identity is present.
	StatusAuthenticated SessionStatus = "authenticated"
	// StatusAnonymous means no identity and no durable token.
	StatusAnonymous SessionStatus = "anonymous"
)

// Session is an immutable snapshot of the auth state. Identity is non-nil
// exactly when Status is StatusAuthenticated.
type Session struct {
	Status    SessionStatus
	Identity  *Identity
	LastError error
}

// Authenticated reports whether the snapshot carries a confirmed identity.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated
}
