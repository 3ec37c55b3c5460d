package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// =============================================================================
// Request Logging Middleware Tests
// =============================================================================

func serveLogged(t *testing.T, req *http.Request, status int) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	mw := NewRequestLoggingMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	h := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RequestID(r.Context()) == "" {
			t.Error("request ID missing from context")
		}
		w.WriteHeader(status)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return buf.String(), rec
}

func TestRequestLoggingMiddleware_LogsRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.RemoteAddr = "192.0.2.10:4000"
	req.Header.Set("User-Agent", "test-agent/1.0")

	out, rec := serveLogged(t, req, http.StatusOK)

	for _, want := range []string{"level=INFO", "method=GET", "path=/services", "status=200", "duration_ms=", "ip=192.0.2.10", "test-agent/1.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q: %s", want, out)
		}
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("response should carry a request ID")
	}
}

func TestRequestLoggingMiddleware_ServerErrorsAreWarnings(t *testing.T) {
	out, _ := serveLogged(t, httptest.NewRequest(http.MethodPost, "/api/contact", nil), http.StatusBadGateway)

	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "status=502") {
		t.Errorf("expected a WARN line with status 502, got: %s", out)
	}
}

func TestRequestLoggingMiddleware_ReusesValidRequestID(t *testing.T) {
	const id = "0b9f5c7e-3f6a-4c1e-9d62-8a4f0c2b7e11"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	out, rec := serveLogged(t, req, http.StatusOK)

	if rec.Header().Get(RequestIDHeader) != id {
		t.Errorf("request ID = %q, want %q", rec.Header().Get(RequestIDHeader), id)
	}
	if !strings.Contains(out, id) {
		t.Error("log should include the request ID")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	_, rec = serveLogged(t, req, http.StatusOK)
	if rec.Header().Get(RequestIDHeader) == "<script>" {
		t.Error("malformed request IDs should be replaced")
	}
}

func TestRequestLoggingMiddleware_RedactsSensitiveParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/contact?sent=1&csrf_token=abc123&email=jane%40example.com", nil)
	out, _ := serveLogged(t, req, http.StatusOK)

	if strings.Contains(out, "abc123") || strings.Contains(out, "jane") {
		t.Errorf("log leaks sensitive values: %s", out)
	}
	if !strings.Contains(out, "sent=1") {
		t.Errorf("log should keep harmless params: %s", out)
	}
}

func TestRequestLoggingMiddleware_SkipsNoisyPaths(t *testing.T) {
	for _, path := range []string{"/health", "/metrics", "/static/css/site.css", "/favicon.ico"} {
		out, _ := serveLogged(t, httptest.NewRequest(http.MethodGet, path, nil), http.StatusOK)
		if out != "" {
			t.Errorf("%s should not be logged, got: %s", path, out)
		}
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	_, _ = rw.Write([]byte("body"))
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want 200 after an implicit header", rw.statusCode)
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		path, query, want string
	}{
		{"/blog", "", "/blog"},
		{"/blog", "category=Compliance", "/blog?category=Compliance"},
		{"/x", "token=s3cret&page=2", "/x?token=[REDACTED]&page=2"},
		{"/x", "Secret=a", "/x?Secret=[REDACTED]"},
		{"/x", "flag", "/x"},
	}
	for _, tc := range tests {
		if got := sanitizePath(tc.path, tc.query); got != tc.want {
			t.Errorf("sanitizePath(%q, %q) = %q, want %q", tc.path, tc.query, got, tc.want)
		}
	}
}
