package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-characters!!"

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)

	token, err := mgr.GenerateToken("carol", RoleUser, "🦌")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "carol", claims.Subject)
	assert.Equal(t, RoleUser, claims.Role)
	assert.Equal(t, "🦌", claims.Avatar)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)
	other := NewJWTManager("another-secret-also-32-characters!!!", time.Hour)

	token, err := mgr.GenerateToken("carol", RoleUser, "")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	mgr := NewJWTManager(testSecret, -time.Minute)

	token, err := mgr.GenerateToken("carol", RoleUser, "")
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)
	_, err := mgr.ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestAuthenticateMiddleware(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)

	var gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUsername = UsernameFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(mgr)(next)

	t.Run("valid token passes", func(t *testing.T) {
		token, err := mgr.GenerateToken("bob", RoleUser, "")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/messages/inbox", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "bob", gotUsername)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/messages/inbox", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/messages/inbox", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdminMiddleware(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(mgr)(RequireAdmin()(next))

	t.Run("admin passes", func(t *testing.T) {
		token, err := mgr.GenerateToken("admin", RoleAdmin, "🎅")
		require.NoError(t, err)

		req := httptest.NewRequest("DELETE", "/admin/users/carol", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		token, err := mgr.GenerateToken("bob", RoleUser, "")
		require.NoError(t, err)

		req := httptest.NewRequest("DELETE", "/admin/users/carol", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
