package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =============================================================================
// Error Response Tests - Security Focus
// =============================================================================

func TestValidationErrorResponse_DoesNotExposeOperationName(t *testing.T) {
	ve := domain.NewValidationError("ContactService.Submit", "email", "Please enter a valid email address")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ValidationErrorResponse(w, r, discardLogger(), ve)
	})

	req := httptest.NewRequest("POST", "/contact", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	body := rec.Body.String()

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if strings.Contains(body, "ContactService") {
		t.Errorf("response exposes internal operation name: %s", body)
	}
	if !strings.Contains(body, "Validation failed") {
		t.Errorf("response should contain user-friendly message, got: %s", body)
	}
	if !strings.Contains(body, "check your input") {
		t.Errorf("response should have helpful guidance, got: %s", body)
	}
}

func TestValidationErrorResponse_JSON_DoesNotExposeOperationName(t *testing.T) {
	ve := domain.NewValidationError("contact.api", "message", "Message must be at least 10 characters")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ValidationErrorResponse(w, r, discardLogger(), ve)
	})

	req := httptest.NewRequest("POST", "/api/contact", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	body := rec.Body.String()

	if strings.Contains(body, "contact.api") {
		t.Errorf("JSON response exposes internal operation name: %s", body)
	}
	if !strings.Contains(body, `"message":"Message must be at least 10 characters"`) {
		t.Errorf("JSON response should contain field message: %s", body)
	}
}

func TestErrorResponse_InternalErrorHidesDetails(t *testing.T) {
	dbErr := &mockDatabaseError{message: "pq: relation \"contact_submissions\" does not exist"}
	internalErr := domain.Internal(dbErr, "ContactRepository.Create", "Database query failed")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r, discardLogger(), internalErr)
	})

	req := httptest.NewRequest("GET", "/contact", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	body := rec.Body.String()

	if strings.Contains(body, "pq:") {
		t.Errorf("response exposes database error: %s", body)
	}
	if strings.Contains(body, "relation") {
		t.Errorf("response exposes database schema: %s", body)
	}
	if strings.Contains(body, "ContactRepository") {
		t.Errorf("response exposes internal operation: %s", body)
	}
	if !strings.Contains(body, "internal error") {
		t.Errorf("response should contain generic internal error message, got: %s", body)
	}
}

func TestErrorResponse_InternalErrorHidesDetails_JSON(t *testing.T) {
	sensitiveErr := &mockDatabaseError{message: "connection to 192.168.1.100:5432 refused"}
	internalErr := domain.Internal(sensitiveErr, "DB.Connect", "Failed to connect")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r, discardLogger(), internalErr)
	})

	req := httptest.NewRequest("GET", "/api/contact", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	body := rec.Body.String()

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if strings.Contains(body, "192.168") {
		t.Errorf("JSON response exposes IP address: %s", body)
	}
	if strings.Contains(body, "DB.Connect") {
		t.Errorf("JSON response exposes internal operation: %s", body)
	}
	if !strings.Contains(body, "internal error") {
		t.Errorf("JSON response should contain generic error, got: %s", body)
	}
}

func TestErrorResponse_UnwrappedErrorReturnsGeneric(t *testing.T) {
	rawErr := &mockDatabaseError{message: "FATAL: password authentication failed for user \"postgres\""}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r, discardLogger(), rawErr)
	})

	req := httptest.NewRequest("GET", "/data", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	body := rec.Body.String()

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(body, "FATAL") || strings.Contains(body, "postgres") {
		t.Errorf("response exposes raw error: %s", body)
	}
	if !strings.Contains(body, "internal error") {
		t.Errorf("response should contain generic message, got: %s", body)
	}
}

func TestErrorCodeToHTTPStatus(t *testing.T) {
	tests := map[string]int{
		domain.EINVALID:     http.StatusUnprocessableEntity,
		domain.EFORBIDDEN:   http.StatusForbidden,
		domain.ENOTFOUND:    http.StatusNotFound,
		domain.ECONFLICT:    http.StatusConflict,
		domain.ETOOLARGE:    http.StatusRequestEntityTooLarge,
		domain.ERATELIMIT:   http.StatusTooManyRequests,
		domain.EUNAVAILABLE: http.StatusBadGateway,
		domain.EINTERNAL:    http.StatusInternalServerError,
		"something-else":    http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := ErrorCodeToHTTPStatus(code); got != want {
			t.Errorf("ErrorCodeToHTTPStatus(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestRenderer_NotFoundRendersPage(t *testing.T) {
	rn := NewRenderer(content.Default(), discardLogger())

	req := httptest.NewRequest("GET", "/nope", nil)
	rec := httptest.NewRecorder()
	rn.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Page Not Found") {
		t.Errorf("body missing title: %s", body)
	}
	if !strings.Contains(body, "<title>Page Not Found | Florian Technologies</title>") {
		t.Errorf("body missing document title")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderer_ErrorJSONForAPI(t *testing.T) {
	rn := NewRenderer(content.Default(), discardLogger())

	req := httptest.NewRequest("GET", "/missing", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	rn.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"not_found"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

// mockDatabaseError simulates a database error for testing
type mockDatabaseError struct {
	message string
}

func (e *mockDatabaseError) Error() string {
	return e.message
}
