package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/evert/rgb-split/internal/pkg/color"
)

func newTestHandler() http.Handler {
	return Handler(NewRouter(), []string{"*"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func splitURL(hex string) string {
	return SplitRGBPath + "?hex=" + url.QueryEscape(hex)
}

func TestHandleSplitRGB_OK(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.Result
	}{
		{"hash upper", "#FFCC00", color.Result{RGB: color.RGB{R: 255, G: 204, B: 0}, Split: color.Split{R: 56, G: 44, B: 0}}},
		{"no hash lower", "ffcc00", color.Result{RGB: color.RGB{R: 255, G: 204, B: 0}, Split: color.Split{R: 56, G: 44, B: 0}}},
		{"black", "#000000", color.Result{}},
		{"white", "#FFFFFF", color.Result{RGB: color.RGB{R: 255, G: 255, B: 255}, Split: color.Split{R: 33, G: 33, B: 33}}},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, splitURL(tt.hex))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var got color.Result
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if got != tt.want {
				t.Errorf("body = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHandleSplitRGB_JSONShape(t *testing.T) {
	rec := get(t, newTestHandler(), splitURL("#FF0000"))

	var raw map[string]map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decoding body %s: %v", rec.Body, err)
	}
	if raw["rgb"]["r"] != 255 || raw["split"]["r"] != 100 {
		t.Errorf("unexpected body: %s", rec.Body)
	}
	for _, key := range []string{"r", "g", "b"} {
		if _, ok := raw["split"][key]; !ok {
			t.Errorf("split missing key %q", key)
		}
	}
}

func TestHandleSplitRGB_BadRequest(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantError string
	}{
		{"missing param", SplitRGBPath, "Missing hex parameter"},
		{"empty param", SplitRGBPath + "?hex=", "Missing hex parameter"},
		{"garbage", splitURL("#xyz"), "Invalid hex code: #xyz"},
		{"shorthand", splitURL("#FFF"), "Invalid hex code: #FFF"},
		{"too long", splitURL("FFCC0000"), "Invalid hex code: FFCC0000"},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body["error"] != tt.wantError {
				t.Errorf("error = %q, want %q", body["error"], tt.wantError)
			}
		})
	}
}

func TestHandleSplitRGB_InternalError(t *testing.T) {
	orig := splitFunc
	t.Cleanup(func() { splitFunc = orig })

	splitFunc = func(string) (color.Result, error) {
		return color.Result{}, errors.New("unexpected")
	}
	rec := get(t, newTestHandler(), splitURL("#FFCC00"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	splitFunc = func(string) (color.Result, error) {
		panic("boom")
	}
	rec = get(t, newTestHandler(), splitURL("#FFCC00"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("panic status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestHandler(), HealthPath)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "OK" {
		t.Errorf("status = %q, want OK", body.Status)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", body.Timestamp, err)
	}
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	h := newTestHandler()

	rec := get(t, h, "/api/unknown")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, splitURL("#FFCC00"), nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("405 Content-Type = %q", ct)
	}
}

func TestHandler_CommonHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, splitURL("#FFCC00"), nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
	if rec.Header().Get("Cache-Control") != "no-cache" {
		t.Error("missing Cache-Control: no-cache")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin")
	}
}
