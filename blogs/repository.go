package blogs

import "context"

// Repository is the persistence surface of the blog record store.
// Implementations report a missing id as an apperror NotFoundError so the
// service can pass it through unchanged.
type Repository interface {
	List(ctx context.Context) ([]Blog, error)
	GetByID(ctx context.Context, id int) (*Blog, error)
	Create(ctx context.Context, blog *Blog) (*Blog, error)
	// Update persists the mutable fields (title, author, url, likes).
	// Ownership is immutable: user_id is never part of an update.
	Update(ctx context.Context, blog *Blog) (*Blog, error)
	Delete(ctx context.Context, id int) error
}
