package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infield-hq/infield-console/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Transporte: token, errores estructurados y 204
// ─────────────────────────────────────────────────────────────

func TestClient_AdjuntaBearerCuandoHayToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})
	client.SetAccessToken("abc123")

	var out map[string]bool
	err := client.Get(context.Background(), "/api/v1/accounts/1", &out)

	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.True(t, out["ok"])
}

func TestClient_SinTokenNoEnviaAuthorization(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	err := client.Delete(context.Background(), "/api/v1/accounts/1", nil)

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorEstructuradoDelBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errorCode":"DUPLICATE_ACCOUNT","message":"la cuenta ya existe","requestId":"req-77"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	err := client.Post(context.Background(), "/api/v1/accounts", map[string]string{"accountName": "Acme"}, nil)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "DUPLICATE_ACCOUNT", apiErr.ErrorCode)
	assert.Equal(t, "la cuenta ya existe", apiErr.Message)
	assert.Equal(t, "req-77", apiErr.RequestID)
}

func TestClient_ErrorNoJSONDegradaAUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream caído"))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	err := client.Get(context.Background(), "/api/v1/projects", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNKNOWN_ERROR", apiErr.ErrorCode)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestClient_404EsErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errorCode":"ACCOUNT_NOT_FOUND","message":"cuenta no encontrada"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	err := client.Get(context.Background(), "/api/v1/accounts/zzz", nil)

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestClient_204NoIntentaDecodificar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	var out map[string]any
	err := client.Post(context.Background(), "/api/v1/role/deleteRoles", map[string][]string{"ids": {"r1"}}, &out)

	require.NoError(t, err)
	assert.Nil(t, out)
}
