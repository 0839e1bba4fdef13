// Package users implements the user registry: registration policy,
// listing, and the ownership mirror kept on each user record.
package users

import (
	"context"

	"github.com/Zamizmi/fullstack-blogi/auth"
)

// Repository is the persistence surface of the registry. The blogs a user
// owns are mirrored on the user record; AppendBlog must be atomic at the
// store level so concurrent appends cannot lose an entry.
type Repository interface {
	Create(ctx context.Context, user *auth.User) (*auth.User, error)
	GetByUsername(ctx context.Context, username string) (*auth.User, error)
	GetByID(ctx context.Context, id int) (*auth.User, error)
	List(ctx context.Context) ([]auth.User, error)
	AppendBlog(ctx context.Context, userID, blogID int) error
}
