package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Zamizmi/fullstack-blogi/apperror"
	"github.com/Zamizmi/fullstack-blogi/auth"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// PostgresRepository is the pgx-backed Repository implementation.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository on the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user. A concurrent insert of the same username is
// caught through the unique constraint and surfaced as the same validation
// error the service's pre-check produces.
func (r *PostgresRepository) Create(ctx context.Context, user *auth.User) (*auth.User, error) {
	query := `INSERT INTO users (username, name, password_hash, adult)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := r.db.QueryRow(ctx, query, user.Username, nullable(user.Name), user.PasswordHash, user.Adult).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "username") {
			return nil, apperror.NewValidationError("username must be unique", err)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	user.Blogs = []int{}
	return user, nil
}

// GetByUsername looks a user up by exact, case-sensitive username.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	query := `SELECT id, username, name, password_hash, adult, blogs
	          FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, username), fmt.Sprintf("user '%s' not found", username))
}

// GetByID looks a user up by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*auth.User, error) {
	query := `SELECT id, username, name, password_hash, adult, blogs
	          FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id), fmt.Sprintf("user with id %d not found", id))
}

// List returns all users in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]auth.User, error) {
	query := `SELECT id, username, name, password_hash, adult, blogs
	          FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	result := []auth.User{}
	for rows.Next() {
		var user auth.User
		var name *string
		if err := rows.Scan(&user.ID, &user.Username, &name, &user.PasswordHash, &user.Adult, &user.Blogs); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user", err)
		}
		if name != nil {
			user.Name = *name
		}
		if user.Blogs == nil {
			user.Blogs = []int{}
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	return result, nil
}

// AppendBlog appends a blog id to the user's owned-blogs mirror. The append
// happens inside a single UPDATE so two concurrent creates by the same user
// both land.
func (r *PostgresRepository) AppendBlog(ctx context.Context, userID, blogID int) error {
	query := `UPDATE users SET blogs = array_append(blogs, $2) WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, userID, blogID)
	if err != nil {
		return apperror.NewDatabaseError("failed to record blog ownership", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", userID), nil)
	}
	return nil
}

func (r *PostgresRepository) scanUser(row pgx.Row, notFoundMsg string) (*auth.User, error) {
	var user auth.User
	var name *string
	err := row.Scan(&user.ID, &user.Username, &name, &user.PasswordHash, &user.Adult, &user.Blogs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(notFoundMsg, nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	if name != nil {
		user.Name = *name
	}
	if user.Blogs == nil {
		user.Blogs = []int{}
	}
	return &user, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
