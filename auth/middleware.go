package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Zamizmi/fullstack-blogi/apperror"
)

// ContextKey is the type for context keys set by this package.
type ContextKey string

// UserIDKey is the context key under which the middleware stores the
// authenticated caller's user id.
const UserIDKey ContextKey = "userID"

// RequireToken returns middleware that resolves the bearer token on each
// request and puts the asserted user id into the request context. A missing
// token and an invalid one are kept apart internally but answer with the
// same 401 body, matching the API this service replaces.
func RequireToken(tokens *TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, r, apperror.NewAuthError("token missing or invalid", ErrMissingToken))
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("token missing or invalid", ErrMissingToken))
				return
			}

			userID, err := tokens.Resolve(parts[1])
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("token missing or invalid", err))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext retrieves the authenticated user id set by RequireToken.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}
