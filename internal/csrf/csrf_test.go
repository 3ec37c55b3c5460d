package csrf

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}

func TestValidateToken(t *testing.T) {
	assert.True(t, ValidateToken("abc", "abc"))
	assert.False(t, ValidateToken("abc", "abd"))
	assert.False(t, ValidateToken("", ""))
	assert.False(t, ValidateToken("abc", ""))
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		form   string
		header string
		want   bool
	}{
		{"form match", "tok", "tok", "", true},
		{"header match", "tok", "", "tok", true},
		{"header wins over form", "tok", "tok", "other", false},
		{"mismatch", "tok", "nope", "", false},
		{"no cookie", "", "tok", "", false},
		{"nothing submitted", "tok", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := url.Values{}
			if tc.form != "" {
				body.Set(FormFieldName, tc.form)
			}
			r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tc.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tc.cookie})
			}
			if tc.header != "" {
				r.Header.Set(HeaderName, tc.header)
			}
			assert.Equal(t, tc.want, ValidateRequest(r))
		})
	}
}

func TestEnsureToken(t *testing.T) {
	t.Run("issues a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/contact", nil)

		token := EnsureToken(rec, r, true)
		require.NotEmpty(t, token)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, token, cookies[0].Value)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("keeps an existing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/contact", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "existing"})

		assert.Equal(t, "existing", EnsureToken(rec, r, false))
		assert.Equal(t, "existing", rec.Result().Cookies()[0].Value)
	})
}

func TestProtect(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Protect(discardLogger())(ok)

	t.Run("GET passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("POST without token is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("JSON POST gets a JSON error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "tok"})
		h.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"forbidden"`)
	})

	t.Run("POST with header token passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set(HeaderName, "tok")
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "tok"})
		h.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
