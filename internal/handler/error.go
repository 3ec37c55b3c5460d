package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/templ/pages/errorpage"
)

// ErrorResponse writes an error response to the client.
// It maps domain error codes to HTTP status codes and answers with JSON for
// API requests and plain text otherwise. Pages use Renderer.Error instead.
func ErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	status := ErrorCodeToHTTPStatus(code)

	logError(logger, r, err, code, domain.ErrorOp(err), status)

	if acceptsJSON(r) {
		writeJSONError(w, status, code, message)
		return
	}
	http.Error(w, message, status)
}

// Error is ErrorResponse for page routes: HTML clients get the full error
// page instead of plain text.
func (rn *Renderer) Error(w http.ResponseWriter, r *http.Request, err error) {
	if acceptsJSON(r) {
		ErrorResponse(w, r, rn.logger, err)
		return
	}

	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)
	logError(rn.logger, r, err, code, domain.ErrorOp(err), status)

	title := http.StatusText(status)
	if status == http.StatusNotFound {
		title = "Page Not Found"
	}
	layout := rn.Layout(r, content.PageKey("error"))
	layout.Meta.Title = title + " | " + rn.site.Name

	rn.Render(w, r, status, errorpage.Page(errorpage.PageData{
		Layout:  layout,
		Status:  status,
		Title:   title,
		Message: domain.ErrorMessage(err),
	}))
}

// NotFound renders the 404 page.
func (rn *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rn.Error(w, r, domain.Errorf(domain.ENOTFOUND, "", "The page you are looking for doesn't exist or has been moved."))
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusUnprocessableEntity // 422
	case domain.EFORBIDDEN:
		return http.StatusForbidden // 403
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.ECONFLICT:
		return http.StatusConflict // 409
	case domain.ETOOLARGE:
		return http.StatusRequestEntityTooLarge // 413
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests // 429
	case domain.EUNAVAILABLE:
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}

// ValidationErrorResponse writes field-level errors as 422. JSON clients get
// the field map; others a generic message.
func ValidationErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		ErrorResponse(w, r, logger, err)
		return
	}

	logger.Info("validation error",
		"op", ve.Op,
		"fields", ve.FieldNames(),
		"path", r.URL.Path,
	)

	if acceptsJSON(r) {
		writeJSON(w, http.StatusUnprocessableEntity, JSONError{Error: JSONErrorBody{
			Code:    domain.EINVALID,
			Message: "Validation failed",
			Fields:  ve.Fields,
		}})
		return
	}

	// Op names stay out of HTML responses.
	http.Error(w, "Validation failed. Please check your input and try again.", http.StatusUnprocessableEntity)
}

// logError logs at Error for 5xx and Info for 4xx.
func logError(logger *slog.Logger, r *http.Request, err error, code, op string, status int) {
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
	}
	if op != "" {
		attrs = append(attrs, "op", op)
	}

	if status >= 500 {
		logger.Error("server error", attrs...)
	} else if status >= 400 {
		logger.Info("client error", attrs...)
	}
}

// acceptsJSON reports whether the client wants a JSON response.
func acceptsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

// JSONErrorBody is the payload of an API error.
type JSONErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// JSONError is the envelope for API errors.
type JSONError struct {
	Error JSONErrorBody `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, JSONError{Error: JSONErrorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
