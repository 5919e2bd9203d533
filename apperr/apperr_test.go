// apperr/apperr_test.go
package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{InvalidArgument("bad input"), http.StatusBadRequest},
		{Unauthenticated("no session"), http.StatusUnauthorized},
		{Forbidden("not yours"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{AlreadyExists("dup"), http.StatusConflict},
		{Unavailable("down"), http.StatusServiceUnavailable},
		{Internal("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus(), tt.err.Message)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	wrapped := errors.New("outer: " + Forbidden("inner").Error())
	assert.Equal(t, KindInternal, KindOf(wrapped))
}

func TestIs(t *testing.T) {
	err := Forbidden("client does not have any credits")
	assert.True(t, Is(err, KindForbidden))
	assert.False(t, Is(err, KindNotFound))
	assert.False(t, Is(errors.New("plain"), KindInternal))
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("category with id %q not found", "abc")
	assert.Equal(t, `category with id "abc" not found`, err.Error())
}
