package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zamizmi/fullstack-blogi/apperror"
)

// fakeUserStore serves a fixed set of users keyed by username.
type fakeUserStore struct {
	users map[string]*User
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	copied := *user
	return &copied, nil
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("salainen"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeUserStore{users: map[string]*User{
		"mluukkai": {
			ID:           1,
			Username:     "mluukkai",
			Name:         "Matti Luukkainen",
			PasswordHash: string(hash),
		},
	}}
	return NewAuthService(store, newTestTokenService(0))
}

func TestLoginSucceedsWithValidCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Username: "mluukkai",
		Password: "salainen",
	})
	require.NoError(t, err)

	assert.Equal(t, "mluukkai", resp.Username)
	assert.Equal(t, "Matti Luukkainen", resp.Name)
	require.NotEmpty(t, resp.Token)

	// The issued token resolves back to the user's id.
	userID, err := newTestTokenService(0).Resolve(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, userID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "mluukkai",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "nobody",
		Password: "salainen",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

// Unknown usernames and wrong passwords must be indistinguishable so the
// login endpoint cannot be used to enumerate accounts.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t)

	_, unknownUserErr := svc.Login(context.Background(), LoginRequest{
		Username: "nobody",
		Password: "salainen",
	})
	_, wrongPasswordErr := svc.Login(context.Background(), LoginRequest{
		Username: "mluukkai",
		Password: "wrong",
	})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())

	appErr1, ok := apperror.FromError(unknownUserErr)
	require.True(t, ok)
	appErr2, ok := apperror.FromError(wrongPasswordErr)
	require.True(t, ok)
	assert.Equal(t, appErr1.StatusCode(), appErr2.StatusCode())
	assert.Equal(t, appErr1.ToResponse(), appErr2.ToResponse())
}
