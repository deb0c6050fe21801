// Package api serves the color-split HTTP JSON endpoints.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/evert/rgb-split/internal/middleware"
	"github.com/evert/rgb-split/internal/pkg/color"
	"github.com/evert/rgb-split/internal/pkg/response"
)

// Route paths.
const (
	SplitRGBPath = "/api/split-rgb"
	HealthPath   = "/health"
)

// splitFunc is swappable in tests to exercise the internal-error path.
var splitFunc = color.SplitHex

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRouter returns a router with the API routes registered and JSON
// bodies for unknown paths and disallowed methods.
func NewRouter() *mux.Router {
	gr := mux.NewRouter()
	Register(gr)
	gr.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.WriteError(w, http.StatusNotFound, "Not found")
	})
	gr.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return gr
}

// Handler wraps h with the middleware every HTTP response goes through.
func Handler(h http.Handler, corsOrigins []string, logger *slog.Logger) http.Handler {
	return middleware.Chain(h,
		middleware.RequestID,
		middleware.AccessLog(logger),
		middleware.Recover(logger),
		middleware.NoCache,
		middleware.CORS(corsOrigins),
	)
}

// Register adds the API routes to gr.
func Register(gr *mux.Router) {
	gr.HandleFunc(SplitRGBPath, HandleSplitRGB).Methods(http.MethodGet, http.MethodHead)
	gr.HandleFunc(HealthPath, HandleHealth).Methods(http.MethodGet, http.MethodHead)
}

// HandleSplitRGB serves GET /api/split-rgb?hex=<color>.
func HandleSplitRGB(w http.ResponseWriter, r *http.Request) {
	hex := r.URL.Query().Get("hex")

	result, err := splitFunc(hex)
	if err != nil {
		var invalid *color.InvalidHexCodeError
		switch {
		case errors.Is(err, color.ErrMissingInput):
			response.WriteError(w, http.StatusBadRequest, "Missing hex parameter")
		case errors.As(err, &invalid):
			response.WriteError(w, http.StatusBadRequest, "Invalid hex code: "+invalid.Input)
		default:
			slog.ErrorContext(r.Context(), "splitting hex color",
				"hex", hex,
				"error", err,
				"request_id", middleware.RequestIDFrom(r.Context()),
			)
			response.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	slog.DebugContext(r.Context(), "split hex color",
		"hex", result.RGB.Hex(),
		"split", result.Split,
	)
	response.WriteJSON(w, http.StatusOK, result)
}

// HandleHealth serves GET /health.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
