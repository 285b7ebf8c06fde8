package domain

import "time"

// Role classifies a user for authorization. Gated operations compare roles
// by exact equality; there is no hierarchy between them.
type Role string

const (
	RoleDefault Role = "DEFAULT"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleDefault || r == RoleAdmin
}

// User models a registered account. ID is assigned once at signup and never
// changes; Username is unique across all users (case-sensitive).
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated view of a User carried through a request:
// derived on login, reconstructed on every token verification, never
// persisted, and never holding the credential.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Principal derives the authorization view of the user.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Username: u.Username, Role: u.Role}
}
