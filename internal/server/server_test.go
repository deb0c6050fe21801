package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evert/rgb-split/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHandler_RESTOnly(t *testing.T) {
	h := NewHandler(config.Default(), nil, testLogger())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/split-rgb?hex=%23FFCC00", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("split status = %d, want 200; body %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, MCPPath, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("%s status = %d, want 404 when MCP is not mounted", MCPPath, rec.Code)
	}
}

func TestNewHandler_WithMCP(t *testing.T) {
	logger := testLogger()
	h := NewHandler(config.Default(), NewMCPServer("test", logger), logger)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, MCPPath, nil))
	if rec.Code == http.StatusNotFound {
		t.Errorf("%s should be routed to the MCP handler", MCPPath)
	}
}

func TestRun_UnknownTransport(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Transport = "grpc"
	if err := Run(context.Background(), cfg, "test", testLogger()); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, "test", testLogger()) }()

	waitForHealth(t, "http://"+cfg.Addr()+"/health")
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil after shutdown", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserving port: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func waitForHealth(t *testing.T, url string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server at %s never became healthy", url)
}
