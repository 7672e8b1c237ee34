package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"signhub/internal/app/server/config"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestApp_RunAndShutdown(t *testing.T) {
	cfg := &config.Config{
		Env: config.EnvDev,
		DB:  config.DB{Driver: config.DriverMemory},
		Server: config.Server{
			RunAddress:      freeAddr(t),
			ShutdownTimeout: 2 * time.Second,
			TimeZone:        "UTC",
			AllowedOrigins:  []string{"*"},
		},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	app, err := New(ctx, cfg, log)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	url := "http://" + cfg.Server.RunAddress + "/api/v1/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNew_InvalidStorage(t *testing.T) {
	cfg := &config.Config{DB: config.DB{Driver: "mongo"}}
	_, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorIs(t, err, config.ErrUnknownDriver)
}
