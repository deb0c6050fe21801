// Package server assembles the HTTP API and MCP server and runs them on the
// configured transport until the context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/rgb-split/internal/api"
	"github.com/evert/rgb-split/internal/config"
	"github.com/evert/rgb-split/internal/middleware"
	"github.com/evert/rgb-split/internal/registry"
)

// MCPPath is where the streamable-http MCP endpoint is mounted.
const MCPPath = "/mcp"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 20 * time.Second
	handlerTimeout    = 15 * time.Second
	maxHeaderBytes    = 60000
	shutdownTimeout   = 10 * time.Second
)

// NewMCPServer creates an MCP server with every tool registered.
func NewMCPServer(version string, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "rgb-split",
		Version: version,
	}, nil)
	server.AddReceivingMiddleware(middleware.LoggingMiddleware(logger))
	registry.RegisterAll(server)
	return server
}

// NewHandler returns the full HTTP handler. When mcpServer is non-nil its
// streamable-http endpoint is mounted at MCPPath next to the REST routes.
func NewHandler(cfg *config.Config, mcpServer *mcp.Server, logger *slog.Logger) http.Handler {
	gr := api.NewRouter()
	if mcpServer == nil {
		// SSE streams must not be cut off, so the per-request timeout only
		// applies when MCP is not mounted.
		return api.Handler(http.TimeoutHandler(gr, handlerTimeout, `{"error":"Request timed out"}`), cfg.CORSOrigins, logger)
	}

	mcpHandler := mcp.NewStreamableHTTPHandler(
		func(r *http.Request) *mcp.Server { return mcpServer },
		nil,
	)
	gr.Handle(MCPPath, mcpHandler)
	return api.Handler(gr, cfg.CORSOrigins, logger)
}

// Run serves on the configured transport and blocks until ctx is done or
// the listener fails.
func Run(ctx context.Context, cfg *config.Config, version string, logger *slog.Logger) error {
	switch cfg.Server.Transport {
	case config.TransportStdio:
		server := NewMCPServer(version, logger)
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return fmt.Errorf("stdio server error: %w", err)
		}
		return nil

	case config.TransportHTTP:
		return serveHTTP(ctx, cfg, NewHandler(cfg, nil, logger), true)

	case config.TransportStreamableHTTP:
		handler := NewHandler(cfg, NewMCPServer(version, logger), logger)
		return serveHTTP(ctx, cfg, handler, false)

	default:
		return fmt.Errorf("unknown transport %q — use 'http', 'stdio' or 'streamable-http'", cfg.Server.Transport)
	}
}

func serveHTTP(ctx context.Context, cfg *config.Config, handler http.Handler, boundedWrites bool) error {
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}
	if boundedWrites {
		httpServer.WriteTimeout = writeTimeout
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		slog.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		}
	}()

	slog.Info("listening",
		"addr", httpServer.Addr,
		"transport", cfg.Server.Transport,
		"corsOrigins", cfg.CORSOrigins,
	)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}
