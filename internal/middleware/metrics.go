package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// MetricsAuthMiddleware guards the Prometheus endpoint with basic auth.
type MetricsAuthMiddleware struct {
	username string
	password string
	enabled  bool
	logger   *slog.Logger
}

// NewMetricsAuthMiddleware creates a new metrics auth middleware.
// If both username and password are empty, authentication is disabled.
func NewMetricsAuthMiddleware(username, password string, logger *slog.Logger) *MetricsAuthMiddleware {
	return &MetricsAuthMiddleware{
		username: username,
		password: password,
		enabled:  username != "" || password != "",
		logger:   logger,
	}
}

// Handler returns middleware that requires basic authentication.
func (m *MetricsAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		if ok {
			// Compare both so timing does not reveal which one failed.
			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(m.username)) == 1
			passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(m.password)) == 1
			if userMatch && passMatch {
				next.ServeHTTP(w, r)
				return
			}
		}

		m.logger.Warn("metrics auth failed", "ip", ClientIP(r), "credentials_present", ok)
		w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}
