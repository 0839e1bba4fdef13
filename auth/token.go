package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Zamizmi/fullstack-blogi/config"
)

var (
	// ErrMissingToken marks a request that carried no token at all.
	ErrMissingToken = errors.New("no token supplied")
	// ErrInvalidToken marks a token whose signature does not verify or
	// whose payload lacks a user id claim.
	ErrInvalidToken = errors.New("token is invalid")
)

// Claims is the session token payload. UserID is the identity assertion;
// the username rides along for convenience only.
type Claims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and resolves signed session tokens. It is stateless:
// a token is valid exactly when its signature verifies, so there is no
// server-side session store and nothing to revoke.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg *config.AuthConfig) *TokenService {
	return &TokenService{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenDuration}
}

// Issue signs a token asserting the given user identity. Tokens carry no
// expiry unless a token duration was configured.
func (t *TokenService) Issue(userID int, username string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(t.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Resolve verifies a token and returns the user id it asserts. All failure
// modes wrap ErrInvalidToken.
func (t *TokenService) Resolve(tokenString string) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
