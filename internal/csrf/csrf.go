// Package csrf provides CSRF protection using the double-submit cookie pattern.
//
// A random token is set in a cookie and repeated in every state-changing
// request, either as a hidden form field or, for the JSON API, in the
// X-CSRF-Token header. A cross-site attacker can make the browser send the
// cookie but cannot read it, so it cannot supply the matching copy.
//
// The token also identifies the visitor's contact form between requests.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// =============================================================================
// Configuration Constants
// =============================================================================

const (
	// CookieName is the name of the CSRF token cookie.
	CookieName = "csrf_token"

	// FormFieldName is the name of the CSRF token form field.
	FormFieldName = "csrf_token"

	// HeaderName carries the token on JSON requests.
	HeaderName = "X-CSRF-Token"

	// TokenLength is the number of random bytes for the token (256 bits).
	TokenLength = 32

	// CookieMaxAge is the cookie lifetime in seconds. EnsureToken extends it
	// on every page view.
	CookieMaxAge = 2 * 3600
)

// =============================================================================
// Token Generation
// =============================================================================

// GenerateToken returns 32 random bytes, base64 URL-encoded (43 characters).
func GenerateToken() (string, error) {
	b := make([]byte, TokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// MustGenerateToken generates a token or panics.
func MustGenerateToken() string {
	token, err := GenerateToken()
	if err != nil {
		panic("csrf: failed to generate token: " + err.Error())
	}
	return token
}

// =============================================================================
// Token Validation
// =============================================================================

// ValidateToken compares the cookie token with the submitted token in
// constant time.
func ValidateToken(cookieToken, submitted string) bool {
	if cookieToken == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submitted)) == 1
}

// ValidateRequest checks the request's submitted token against its cookie.
// The header wins over the form field, so JSON bodies are never parsed as
// forms.
func ValidateRequest(r *http.Request) bool {
	cookie := GetTokenFromRequest(r)
	if cookie == "" {
		return false
	}

	submitted := r.Header.Get(HeaderName)
	if submitted == "" {
		submitted = r.PostFormValue(FormFieldName)
	}
	return ValidateToken(cookie, submitted)
}

// =============================================================================
// Cookie Management
// =============================================================================

// SetCookie sets the CSRF token cookie on the response. SameSite=Lax keeps
// the cookie on top-level navigations from other sites so a visitor arriving
// from a link keeps their form.
func SetCookie(w http.ResponseWriter, token string, isSecure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HttpOnly: false,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetTokenFromRequest retrieves the CSRF token from the request cookie.
// Returns empty string if cookie doesn't exist.
func GetTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// =============================================================================
// Handler Helpers
// =============================================================================

// EnsureToken returns the request's token, issuing a new one when the cookie
// is missing. The cookie is re-set either way to extend its lifetime.
func EnsureToken(w http.ResponseWriter, r *http.Request, isSecure bool) string {
	token := GetTokenFromRequest(r)
	if token == "" {
		token = MustGenerateToken()
	}
	SetCookie(w, token, isSecure)
	return token
}

// =============================================================================
// Middleware
// =============================================================================

// Protect rejects unsafe requests whose token does not match the cookie with
// 403. Safe methods pass through untouched.
func Protect(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if ValidateRequest(r) {
				next.ServeHTTP(w, r)
				return
			}

			logger.Warn("csrf token mismatch", "method", r.Method, "path", r.URL.Path)
			forbidden(w, r)
		})
	}
}

func forbidden(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(HeaderName) != "" || strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"code":    "forbidden",
				"message": "Your session expired. Please reload the page and try again.",
			},
		})
		return
	}
	http.Error(w, "Your session expired. Please reload the page and try again.", http.StatusForbidden)
}
