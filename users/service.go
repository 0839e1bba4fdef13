package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Zamizmi/fullstack-blogi/apperror"
	"github.com/Zamizmi/fullstack-blogi/auth"
)

// minPasswordLength is the registration policy minimum, measured in
// characters rather than bytes.
const minPasswordLength = 3

// UserService implements the registry's business rules on top of a
// Repository.
type UserService struct {
	repo Repository
}

// NewUserService creates a UserService.
func NewUserService(repo Repository) *UserService {
	return &UserService{repo: repo}
}

// Register validates and creates a new user. The password is rejected below
// three characters, usernames are unique case-sensitively, and an omitted
// adult flag defaults to true. The returned user carries no password hash.
func (s *UserService) Register(ctx context.Context, req NewUserRequest) (*auth.User, error) {
	if req.Username == "" {
		return nil, apperror.NewValidationError("username is required", nil)
	}
	if len([]rune(req.Password)) < minPasswordLength {
		return nil, apperror.NewValidationError("password must be at least 3 characters long", nil)
	}

	_, err := s.repo.GetByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperror.NewValidationError("username must be unique", nil)
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	adult := true
	if req.Adult != nil {
		adult = *req.Adult
	}

	user := &auth.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hash),
		Adult:        adult,
		Blogs:        []int{},
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	created.PasswordHash = ""
	return created, nil
}

// List returns all users. Password hashes are stripped before the users
// leave the service.
func (s *UserService) List(ctx context.Context) ([]auth.User, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].PasswordHash = ""
	}
	return result, nil
}

// RecordOwnership appends blogID to the owner's blogs mirror. Safe under
// concurrent creation because the underlying append is a single atomic
// store operation.
func (s *UserService) RecordOwnership(ctx context.Context, userID, blogID int) error {
	return s.repo.AppendBlog(ctx, userID, blogID)
}
