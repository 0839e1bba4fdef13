package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleLogin(t *testing.T) {
	handler := NewHandlers(newTestAuthService(t)).HandleLogin()

	t.Run("valid credentials answer a token", func(t *testing.T) {
		rec := postLogin(t, handler, `{"username":"mluukkai","password":"salainen"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "mluukkai", resp.Username)
		assert.Equal(t, "Matti Luukkainen", resp.Name)
	})

	t.Run("wrong password answers 401", func(t *testing.T) {
		rec := postLogin(t, handler, `{"username":"mluukkai","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid username or password", resp.Error)
	})

	t.Run("unknown username answers the same 401", func(t *testing.T) {
		rec := postLogin(t, handler, `{"username":"nobody","password":"salainen"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields answer 400", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"username":"mluukkai"}`, `{"password":"salainen"}`} {
			rec := postLogin(t, handler, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		rec := postLogin(t, handler, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequireToken(t *testing.T) {
	tokens := newTestTokenService(0)

	// The guarded handler reports the caller id it sees in the context.
	guarded := RequireToken(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		WriteJSON(w, http.StatusOK, map[string]int{"id": userID})
	}))

	request := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid bearer token passes the caller id through", func(t *testing.T) {
		token, err := tokens.Issue(42, "mluukkai")
		require.NoError(t, err)

		rec := request("Bearer " + token)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]int
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 42, body["id"])
	})

	t.Run("missing header answers 401", func(t *testing.T) {
		rec := request("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "token missing or invalid")
	})

	t.Run("non-bearer scheme answers 401", func(t *testing.T) {
		rec := request("Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token answers the same 401", func(t *testing.T) {
		rec := request("Bearer garbage")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "token missing or invalid")
	})
}
