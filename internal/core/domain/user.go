package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an account on the store API. The password never travels back
// from the server; it only appears in registration payloads.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Identity is the authenticated actor held in memory for the life of the
// session. It is a trimmed view of User.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IdentityOf converts a server User record into the in-memory Identity.
func IdentityOf(u User) Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}
