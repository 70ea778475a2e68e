package middleware

import (
	"bytes"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// =============================================================================
// Metrics Auth Middleware Tests
// =============================================================================

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func metricsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("badrum_leads_total 3"))
	})
}

func TestMetricsAuthMiddleware_Credentials(t *testing.T) {
	tests := []struct {
		name     string
		setAuth  func(r *http.Request)
		expected int
	}{
		{"valid", func(r *http.Request) { r.SetBasicAuth("prom", "secret123") }, http.StatusOK},
		{"no credentials", func(r *http.Request) {}, http.StatusUnauthorized},
		{"wrong username", func(r *http.Request) { r.SetBasicAuth("admin", "secret123") }, http.StatusUnauthorized},
		{"wrong password", func(r *http.Request) { r.SetBasicAuth("prom", "wrong") }, http.StatusUnauthorized},
		{"empty credentials", func(r *http.Request) { r.SetBasicAuth("", "") }, http.StatusUnauthorized},
		{"bearer scheme", func(r *http.Request) { r.Header.Set("Authorization", "Bearer secret123") }, http.StatusUnauthorized},
		{"malformed base64", func(r *http.Request) { r.Header.Set("Authorization", "Basic !!!") }, http.StatusUnauthorized},
		{"header injection", func(r *http.Request) {
			raw := base64.StdEncoding.EncodeToString([]byte("prom:secret123\r\nX-Injected: header"))
			r.Header.Set("Authorization", "Basic "+raw)
		}, http.StatusUnauthorized},
	}

	wrapped := NewMetricsAuthMiddleware("prom", "secret123", discardLogger()).Handler(metricsHandler())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/metrics", nil)
			tt.setAuth(req)
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			if rec.Code != tt.expected {
				t.Fatalf("expected status %d, got %d", tt.expected, rec.Code)
			}
			if tt.expected == http.StatusUnauthorized {
				if !strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), `Basic realm="metrics"`) {
					t.Errorf("expected WWW-Authenticate challenge, got %q", rec.Header().Get("WWW-Authenticate"))
				}
				if strings.Contains(rec.Body.String(), "badrum_leads_total") {
					t.Error("metrics must not be served without valid credentials")
				}
			}
		})
	}
}

func TestMetricsAuthMiddleware_LogsFailedAttempt(t *testing.T) {
	var buf bytes.Buffer
	mw := NewMetricsAuthMiddleware("prom", "secret123", slog.New(slog.NewTextHandler(&buf, nil)))

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	req.SetBasicAuth("prom", "guess")
	mw.Handler(metricsHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, "198.51.100.7") {
		t.Errorf("failed attempt should be logged with the client IP, got: %s", out)
	}
	if strings.Contains(out, "guess") {
		t.Errorf("log must not contain the attempted password, got: %s", out)
	}
}

func TestMetricsAuthMiddleware_DisabledWhenNoCredentials(t *testing.T) {
	mw := NewMetricsAuthMiddleware("", "", discardLogger())
	if mw.Enabled() {
		t.Fatal("expected auth to be disabled without credentials")
	}

	rec := httptest.NewRecorder()
	mw.Handler(metricsHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 when auth is disabled, got %d", rec.Code)
	}
}
