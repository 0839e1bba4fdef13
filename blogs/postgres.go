package blogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Zamizmi/fullstack-blogi/apperror"
)

// PostgresRepository is the pgx-backed Repository implementation.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository on the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all blogs in insertion order, each joined with its owner's
// public summary.
func (r *PostgresRepository) List(ctx context.Context) ([]Blog, error) {
	query := `SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id, u.username, u.name
	          FROM blogs b
	          LEFT JOIN users u ON u.id = b.user_id
	          ORDER BY b.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list blogs", err)
	}
	defer rows.Close()

	result := []Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan blog", err)
		}
		result = append(result, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list blogs", err)
	}
	return result, nil
}

// GetByID returns a single blog with its owner summary.
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Blog, error) {
	query := `SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id, u.username, u.name
	          FROM blogs b
	          LEFT JOIN users u ON u.id = b.user_id
	          WHERE b.id = $1`
	blog, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("blog with id %d not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get blog", err)
	}
	return blog, nil
}

// Create inserts a new blog and fills in its assigned id.
func (r *PostgresRepository) Create(ctx context.Context, blog *Blog) (*Blog, error) {
	query := `INSERT INTO blogs (title, author, url, likes, user_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	err := r.db.QueryRow(ctx, query, blog.Title, nullable(blog.Author), blog.URL, blog.Likes, blog.UserID).Scan(&blog.ID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create blog", err)
	}
	return blog, nil
}

// Update persists the mutable fields of an existing blog.
func (r *PostgresRepository) Update(ctx context.Context, blog *Blog) (*Blog, error) {
	query := `UPDATE blogs SET title = $2, author = $3, url = $4, likes = $5
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, blog.ID, blog.Title, nullable(blog.Author), blog.URL, blog.Likes)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to update blog", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("blog with id %d not found", blog.ID), nil)
	}
	return blog, nil
}

// Delete removes a blog by id.
func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete blog", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("blog with id %d not found", id), nil)
	}
	return nil
}

func scanBlog(row pgx.Row) (*Blog, error) {
	var blog Blog
	var author, username, name *string
	if err := row.Scan(&blog.ID, &blog.Title, &author, &blog.URL, &blog.Likes, &blog.UserID, &username, &name); err != nil {
		return nil, err
	}
	if author != nil {
		blog.Author = *author
	}
	if blog.UserID != nil && username != nil {
		blog.User = &Owner{ID: *blog.UserID, Username: *username}
		if name != nil {
			blog.User.Name = *name
		}
	}
	return &blog, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
