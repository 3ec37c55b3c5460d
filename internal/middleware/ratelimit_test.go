package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock lets tests move the limiter's notion of now.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(max int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(max, window)
	rl.now = clock.Now
	return rl, clock
}

// =============================================================================
// RateLimiter Tests
// =============================================================================

func TestRateLimiter_Allow(t *testing.T) {
	rl, _ := newTestLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("4th request should be denied")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("a different key has its own budget")
	}
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	rl, clock := newTestLimiter(1, time.Minute)

	rl.Allow("k")
	if rl.Allow("k") {
		t.Fatal("second request inside the window should be denied")
	}

	clock.Advance(30 * time.Second)
	if got := rl.TimeUntilReset("k"); got != 30*time.Second {
		t.Errorf("TimeUntilReset = %v, want 30s", got)
	}

	clock.Advance(31 * time.Second)
	if !rl.Allow("k") {
		t.Error("request after the window should be allowed")
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	rl, _ := newTestLimiter(1, time.Hour)

	rl.Allow("k")
	rl.Reset("k")
	if !rl.Allow("k") {
		t.Error("Reset should restore the budget")
	}
	if got := rl.TimeUntilReset("unknown"); got != 0 {
		t.Errorf("TimeUntilReset for unknown key = %v, want 0", got)
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl, clock := newTestLimiter(5, time.Minute)

	rl.Allow("old")
	clock.Advance(2 * time.Minute)
	rl.Allow("fresh")

	if removed := rl.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if _, ok := rl.entries["fresh"]; !ok {
		t.Error("fresh entry should survive the sweep")
	}
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(1, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// =============================================================================
// RateLimitMiddleware Tests
// =============================================================================

func TestRateLimitMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(2, time.Hour)
	mw := NewRateLimitMiddleware(rl, discardLogger())

	calls := 0
	h := mw.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	post := func(path, accept string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "203.0.113.9:5555"
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := post("/contact", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := post("/contact", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "3600" {
		t.Errorf("Retry-After = %q, want 3600", rec.Header().Get("Retry-After"))
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("HTML request got Content-Type %q", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Body.String(), "Too Many Requests") {
		t.Error("HTML body should explain the limit")
	}

	rec = post("/api/contact", "application/json")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("JSON body: %v", err)
	}
	if body.Error.Code != "rate_limit" {
		t.Errorf("error code = %q, want rate_limit", body.Error.Code)
	}

	if calls != 2 {
		t.Errorf("next called %d times, want 2", calls)
	}
}

// =============================================================================
// ClientIP Tests
// =============================================================================

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{"remote addr", "192.0.2.1:1234", nil, "192.0.2.1"},
		{"remote addr without port", "192.0.2.1", nil, "192.0.2.1"},
		{"forwarded for", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"}, "198.51.100.7"},
		{"real ip", "10.0.0.1:1", map[string]string{"X-Real-IP": "198.51.100.8"}, "198.51.100.8"},
		{"forwarded wins over real ip", "10.0.0.1:1", map[string]string{
			"X-Forwarded-For": "198.51.100.7",
			"X-Real-IP":       "198.51.100.8",
		}, "198.51.100.7"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tc.want {
				t.Errorf("ClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
