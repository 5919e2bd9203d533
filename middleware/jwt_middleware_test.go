// middleware/jwt_middleware_test.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("64a0c1f2e4b0a1b2c3d4e5f6", true, false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64a0c1f2e4b0a1b2c3d4e5f6", claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.False(t, claims.IsSuperAdmin)
	assert.Zero(t, claims.ExpiresAt)
}

func TestParseJWTTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("64a0c1f2e4b0a1b2c3d4e5f6", false, false)
	require.NoError(t, err)

	// Flip the role flags by re-signing with a different secret.
	t.Setenv("JWT_SECRET", "other-secret")
	forged, err := GenerateJWT("64a0c1f2e4b0a1b2c3d4e5f6", true, true)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	_, err = ParseJWT(forged)
	assert.Error(t, err)

	// Corrupting the signature of a genuine token also fails.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	corrupted := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	_, err = ParseJWT(corrupted)
	assert.Error(t, err)
}

func TestGenerateJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("64a0c1f2e4b0a1b2c3d4e5f6", false, false)
	assert.Error(t, err)
}

type stubBlocklist struct {
	blocked bool
	err     error
}

func (b *stubBlocklist) IsBlocked(context.Context, string) (bool, error) {
	return b.blocked, b.err
}

func jwtRequest(t *testing.T, blocklist TokenBlocklist) error {
	t.Helper()

	token, err := GenerateJWT("64a0c1f2e4b0a1b2c3d4e5f6", false, false)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	h := JWTMiddleware(blocklist)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func TestJWTMiddlewareBlocklist(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("clean token passes", func(t *testing.T) {
		assert.NoError(t, jwtRequest(t, &stubBlocklist{}))
	})

	t.Run("blocked token rejected", func(t *testing.T) {
		err := jwtRequest(t, &stubBlocklist{blocked: true})
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("lookup failure fails closed", func(t *testing.T) {
		err := jwtRequest(t, &stubBlocklist{err: errors.New("connection refused")})
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
	})

	t.Run("disabled blocklist passes", func(t *testing.T) {
		assert.NoError(t, jwtRequest(t, (*SessionBlocklist)(nil)))
	})
}
