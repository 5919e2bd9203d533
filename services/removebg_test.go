// services/removebg_test.go
package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ediestyles/closet_backend/apperr"
)

func TestPhotoroomProcess(t *testing.T) {
	processed := []byte("processed-image-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret-key", r.Header.Get("x-api-key"))

		var req segmentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("raw")), req.ImageFileB64)
		assert.True(t, req.Crop)

		json.NewEncoder(w).Encode(segmentResponse{
			ResultB64: base64.StdEncoding.EncodeToString(processed),
		})
	}))
	defer server.Close()

	t.Setenv("PHOTOROOM_API_URL", server.URL)
	t.Setenv("PHOTOROOM_API_KEY", "secret-key")

	svc := NewPhotoroomService()
	got, err := svc.Process(context.Background(), []byte("raw"), true)
	require.NoError(t, err)
	assert.Equal(t, processed, got)
}

func TestPhotoroomProcessErrors(t *testing.T) {
	t.Run("non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		}))
		defer server.Close()

		t.Setenv("PHOTOROOM_API_URL", server.URL)
		_, err := NewPhotoroomService().Process(context.Background(), []byte("raw"), false)
		assert.True(t, apperr.Is(err, apperr.KindUnavailable))
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		t.Setenv("PHOTOROOM_API_URL", server.URL)
		_, err := NewPhotoroomService().Process(context.Background(), []byte("raw"), false)
		assert.True(t, apperr.Is(err, apperr.KindUnavailable))
	})

	t.Run("empty result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(segmentResponse{})
		}))
		defer server.Close()

		t.Setenv("PHOTOROOM_API_URL", server.URL)
		_, err := NewPhotoroomService().Process(context.Background(), []byte("raw"), false)
		assert.True(t, apperr.Is(err, apperr.KindUnavailable))
	})
}
