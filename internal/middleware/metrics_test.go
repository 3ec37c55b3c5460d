package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetricsAuthMiddleware(t *testing.T) {
	mw := NewMetricsAuthMiddleware("prom", "s3cret", discardLogger())
	h := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
		rawHeader  string
		wantStatus int
	}{
		{name: "valid", user: "prom", pass: "s3cret", setAuth: true, wantStatus: http.StatusOK},
		{name: "no credentials", wantStatus: http.StatusUnauthorized},
		{name: "wrong user", user: "admin", pass: "s3cret", setAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "wrong password", user: "prom", pass: "nope", setAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "empty credentials", setAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "malformed header", rawHeader: "Basic not-base64!", wantStatus: http.StatusUnauthorized},
		{name: "bearer scheme", rawHeader: "Bearer s3cret", wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tc.setAuth {
				req.SetBasicAuth(tc.user, tc.pass)
			}
			if tc.rawHeader != "" {
				req.Header.Set("Authorization", tc.rawHeader)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") != `Basic realm="metrics"` {
				t.Errorf("WWW-Authenticate = %q", rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestMetricsAuthMiddleware_DisabledWithoutCredentials(t *testing.T) {
	h := NewMetricsAuthMiddleware("", "", discardLogger()).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
