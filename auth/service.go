package auth

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Zamizmi/fullstack-blogi/apperror"
)

// UserStore is the slice of the user registry the auth service needs.
// The users package's repository satisfies it.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// AuthService authenticates users against stored credentials and issues
// session tokens.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

// NewAuthService creates an AuthService.
func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the submitted credentials and returns a session token.
// An unknown username and a wrong password produce the identical error so
// callers cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("invalid username or password", nil)
		}
		log.Printf("login: failed to look up user: %v", err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &LoginResponse{Token: token, Username: user.Username, Name: user.Name}, nil
}
