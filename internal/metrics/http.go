package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code and bytes written
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	wroteHeader  bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// Unwrap returns the underlying ResponseWriter for middleware compatibility
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// routes are the fixed paths recorded as-is. Everything else collapses into
// a few buckets so crawlers probing random URLs cannot grow the label set.
var routes = map[string]bool{
	"/":                     true,
	"/about":                true,
	"/services":             true,
	"/products":             true,
	"/blog":                 true,
	"/contact":              true,
	"/privacy":              true,
	"/terms":                true,
	"/health":               true,
	"/api/contact":          true,
	"/api/contact/validate": true,
}

func normalizePath(path string, status int) string {
	switch {
	case routes[path]:
		return path
	case strings.HasPrefix(path, "/images/"):
		return "/images/{name}"
	case strings.HasPrefix(path, "/static/"):
		return "/static/*"
	case status == http.StatusNotFound:
		return "unmatched"
	case strings.HasPrefix(path, "/blog/"):
		return "/blog/{slug}"
	default:
		return "other"
	}
}

// Middleware records HTTP request metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip metrics endpoint to avoid recursion
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		path := normalizePath(r.URL.Path, rw.statusCode)
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rw.statusCode)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
