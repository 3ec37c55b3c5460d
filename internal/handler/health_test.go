package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		db   Pinger
		want int
	}{
		{"no database", nil, http.StatusOK},
		{"database up", pingerFunc(func(context.Context) error { return nil }), http.StatusOK},
		{"database down", pingerFunc(func(context.Context) error { return errors.New("refused") }), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			NewHealthHandler(tt.db).RegisterRoutes(mux)

			if rec := get(t, mux, "/health"); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
