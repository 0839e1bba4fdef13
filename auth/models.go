// Package auth handles session tokens, login, and the middleware that
// authenticates requests. It also owns the User model, which the users
// package reuses for the registry.
package auth

// User represents a registered user. PasswordHash never leaves the server:
// the json tag excludes it from every response. Blogs mirrors the ids of
// the blogs the user owns, in creation order.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name,omitempty"`
	PasswordHash string `json:"-"`
	Adult        bool   `json:"adult"`
	Blogs        []int  `json:"blogs"`
}
