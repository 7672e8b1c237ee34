package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"signhub/internal/app/client/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerAddress: srv.URL, Timeout: 5 * time.Second}
	return NewHTTPClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_Register(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		writeJSON(w, http.StatusCreated, map[string]string{
			"status":          "Ok",
			"username":        "alice",
			"welcome_message": "Bem-vindo, alice! Sua conta foi criada com sucesso.",
			"signature":       "c2ln",
		})
	})

	res, err := c.Register(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "c2ln", res.Signature)
}

func TestClient_Register_Conflict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"status": "Error", "error": "Nome de usuário já existe."})
	})

	_, err := c.Register(context.Background(), "alice")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Nome de usuário já existe.", apiErr.Message)
}

func TestClient_Sign(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sign", r.URL.Path)
		writeJSON(w, http.StatusCreated, map[string]string{
			"signature_id":  "5f8e0a52-4c1b-4d0b-9c8e-0a2b3c4d5e6f",
			"signature_b64": "AAEC",
		})
	})

	res, err := c.Sign(context.Background(), "alice", "hello")
	require.NoError(t, err)
	assert.Equal(t, "5f8e0a52-4c1b-4d0b-9c8e-0a2b3c4d5e6f", res.SignatureID)
	assert.Equal(t, "AAEC", res.SignatureB64)
}

func TestClient_Verify(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req VerifyRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "hello", req.OriginalText)
			assert.Empty(t, req.SignatureID)

			writeJSON(w, http.StatusOK, VerifyResult{
				IsValid:          true,
				Message:          "Assinatura VÁLIDA.",
				Signer:           "alice",
				Algorithm:        "SHA-256 + RSA",
				VerificationTime: "2024-05-01 09:30:00",
			})
		})

		res, err := c.Verify(context.Background(), VerifyRequest{OriginalText: "hello", Signature: "AAEC"})
		require.NoError(t, err)
		assert.True(t, res.IsValid)
		assert.Equal(t, "alice", res.Signer)
	})

	t.Run("not found keeps verdict body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, VerifyResult{Message: "ID da assinatura não encontrado."})
		})

		res, err := c.Verify(context.Background(), VerifyRequest{SignatureID: "missing"})

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.NotNil(t, res)
		assert.False(t, res.IsValid)
		assert.Equal(t, "ID da assinatura não encontrado.", res.Message)
	})
}

func TestClient_HealthCheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/health", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
		})
		assert.NoError(t, c.HealthCheck(context.Background()))
	})

	t.Run("unavailable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "UNAVAILABLE"})
		})

		err := c.HealthCheck(context.Background())
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})

	t.Run("problem details", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "validation failed"})
		})

		err := c.HealthCheck(context.Background())
		assert.EqualError(t, err, "validation failed")
	})
}
