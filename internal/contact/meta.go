package contact

import (
	"context"
	"net/http"
)

type contextKey string

const requestMetaContextKey contextKey = "contact_request_meta"

// RequestMeta describes the HTTP request a submission arrived on. Handlers
// attach it to the context so submitters can record provenance without the
// form knowing about HTTP.
type RequestMeta struct {
	ClientIP  string `json:"-"`
	UserAgent string `json:"user_agent,omitempty"`
	Referer   string `json:"referer,omitempty"`
	Path      string `json:"path,omitempty"`
}

// NewRequestMeta builds RequestMeta from r using the already resolved client IP.
func NewRequestMeta(r *http.Request, clientIP string) RequestMeta {
	return RequestMeta{
		ClientIP:  clientIP,
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
		Path:      r.URL.Path,
	}
}

// WithRequestMeta stores meta in ctx.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaContextKey, meta)
}

// RequestMetaFrom retrieves the RequestMeta stored in ctx, if any.
func RequestMetaFrom(ctx context.Context) (RequestMeta, bool) {
	meta, ok := ctx.Value(requestMetaContextKey).(RequestMeta)
	return meta, ok
}
