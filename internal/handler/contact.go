package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/DukeRupert/florian/internal/contact"
	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/csrf"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/middleware"
	contactpage "github.com/DukeRupert/florian/internal/templ/pages/contact"
)

// maxContactBody bounds form and JSON bodies on the contact routes.
const maxContactBody = 64 << 10

// apiValidator checks the shape of JSON request DTOs.
var apiValidator = domain.NewValidator()

// =============================================================================
// Request/Response DTOs
// =============================================================================

// contactRequest is the body of POST /api/contact. Length caps are checked
// here; the visitor-facing rules run in the form.
type contactRequest struct {
	FirstName   string `json:"firstName" validate:"max=100"`
	LastName    string `json:"lastName" validate:"max=100"`
	Email       string `json:"email" validate:"max=254"`
	Company     string `json:"company" validate:"max=200"`
	ProjectType string `json:"projectType" validate:"max=32"`
	Message     string `json:"message" validate:"max=5000"`
}

func (c contactRequest) submission() domain.ContactSubmission {
	return domain.ContactSubmission{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Company:     c.Company,
		ProjectType: domain.ProjectType(c.ProjectType),
		Message:     c.Message,
	}
}

type contactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// validateRequest is the body of POST /api/contact/validate.
type validateRequest struct {
	Field string `json:"field" validate:"required,max=32"`
	Value string `json:"value" validate:"max=5000"`
}

type validateResponse struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// =============================================================================
// Handler
// =============================================================================

// ContactHandler serves the contact page and its submit endpoints. Each
// visitor's form state lives in the registry under their CSRF token.
type ContactHandler struct {
	renderer *Renderer
	registry *contact.Registry
	logger   *slog.Logger
	isSecure bool
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(renderer *Renderer, registry *contact.Registry, logger *slog.Logger, isSecure bool) *ContactHandler {
	return &ContactHandler{
		renderer: renderer,
		registry: registry,
		logger:   logger,
		isSecure: isSecure,
	}
}

// RegisterRoutes registers the contact routes. Every POST passes protect
// (CSRF validation). The two submit routes also pass limit; per-field
// validation does not spend the submit budget.
func (h *ContactHandler) RegisterRoutes(mux *http.ServeMux, limit, protect func(http.Handler) http.Handler) {
	submit := middleware.Stack(limit, protect)

	mux.HandleFunc("GET /contact", h.Show)
	mux.Handle("POST /contact", submit(http.HandlerFunc(h.Submit)))
	mux.Handle("POST /api/contact", submit(http.HandlerFunc(h.SubmitJSON)))
	mux.Handle("POST /api/contact/validate", protect(http.HandlerFunc(h.Validate)))
}

// Show renders the contact page. ?sent=1 shows the success banner that
// follows a redirect after a successful submit.
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	token := csrf.EnsureToken(w, r, h.isSecure)

	state := contact.State{Status: contact.StatusIdle}
	if form, ok := h.registry.Peek(token); ok {
		state = form.State()
	}
	if r.URL.Query().Get("sent") == "1" && !state.Submitting {
		state.Status = contact.StatusSuccess
	}

	h.renderPage(w, r, http.StatusOK, state, token)
}

// Submit handles the HTML form post. Success redirects to /contact?sent=1;
// invalid input (422), a failed send (502) and a send already in flight
// (409) re-render the form with the visitor's values.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "contact.submit"

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		h.renderer.Error(w, r, bodyError(op, err))
		return
	}

	var sub domain.ContactSubmission
	for _, f := range domain.ContactFields {
		sub.Set(f, r.PostForm.Get(f.String()))
	}
	if err := domain.CheckLimits(op, sub); err != nil {
		ValidationErrorResponse(w, r, h.logger, err)
		return
	}

	token := csrf.GetTokenFromRequest(r)
	form := h.registry.Get(token)
	status, err := h.submit(r, form, sub)
	if err != nil {
		if domain.ErrorCode(err) != domain.ECONFLICT {
			h.renderer.Error(w, r, err)
			return
		}
		status = http.StatusConflict
	}

	if status == http.StatusOK {
		http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
		return
	}
	h.renderPage(w, r, status, form.State(), token)
}

// SubmitJSON handles POST /api/contact.
//
//	200 {"status":"success","message":...}
//	422 {"error":{"code":"invalid","fields":{...}}}
//	409 when a send for this visitor is already in flight
//	502 when delivery failed
func (h *ContactHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	const op = "contact.api"

	var req contactRequest
	if err := decodeJSON(w, r, op, &req); err != nil {
		ValidationErrorResponse(w, r, h.logger, err)
		return
	}

	form := h.registry.Get(csrf.GetTokenFromRequest(r))
	status, err := h.submit(r, form, req.submission())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	page := h.renderer.Site().Contact
	state := form.State()
	switch status {
	case http.StatusOK:
		writeJSON(w, http.StatusOK, contactResponse{Status: "success", Message: page.Success})
	case http.StatusUnprocessableEntity:
		writeJSON(w, status, JSONError{Error: JSONErrorBody{
			Code:    domain.EINVALID,
			Message: "Validation failed",
			Fields:  state.Errors.Map(),
		}})
	default:
		writeJSONError(w, status, domain.EUNAVAILABLE, page.Failure)
	}
}

// Validate handles POST /api/contact/validate: one field in, its error
// message (empty when valid) out. The visitor's form is not touched.
func (h *ContactHandler) Validate(w http.ResponseWriter, r *http.Request) {
	const op = "contact.validate"

	var req validateRequest
	if err := decodeJSON(w, r, op, &req); err != nil {
		ValidationErrorResponse(w, r, h.logger, err)
		return
	}

	field, ok := domain.ParseContactField(req.Field)
	if !ok {
		ValidationErrorResponse(w, r, h.logger, domain.NewValidationError(op, "field", "Unknown field"))
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Field: field.String(),
		Error: domain.ValidateField(field, req.Value),
	})
}

// submit copies sub into form and sends it. It returns the HTTP status
// for the form's resulting state: 200, 422 or 502. Only a send already in
// flight is returned as an error, and it leaves form as it was.
//
// A send that has started runs to completion even if the visitor
// disconnects; the submitter's own timeout still bounds it.
func (h *ContactHandler) submit(r *http.Request, form *contact.Form, sub domain.ContactSubmission) (int, error) {
	ctx := context.WithoutCancel(r.Context())
	ctx = contact.WithRequestMeta(ctx, contact.NewRequestMeta(r, middleware.ClientIP(r)))

	if err := form.SubmitValues(ctx, sub); err != nil {
		if errors.Is(err, contact.ErrSubmitInFlight) {
			return 0, domain.Conflict("contact.submit", "Your message is already being sent.")
		}
		return 0, domain.Internal(err, "contact.submit", "failed to submit contact form")
	}

	switch form.State().Status {
	case contact.StatusSuccess:
		return http.StatusOK, nil
	case contact.StatusError:
		return http.StatusBadGateway, nil
	default:
		return http.StatusUnprocessableEntity, nil
	}
}

func (h *ContactHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, state contact.State, token string) {
	h.renderer.Render(w, r, status, contactpage.Page(contactpage.PageData{
		Layout:    h.renderer.Layout(r, content.PageContact),
		Form:      state,
		CSRFToken: token,
	}))
}

// decodeJSON decodes a bounded JSON body into dst and checks its validate
// tags. Bad input comes back as *domain.ValidationError, an oversized body
// as ETOOLARGE.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return bodyError(op, err)
		}
		return domain.NewValidationError(op, "body", "Request body must be a JSON object")
	}
	if err := apiValidator.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.NewValidationError(op, "body", "Request body must be a JSON object")
		}
		ve := &domain.ValidationError{Op: op, Fields: make(map[string]string, len(fieldErrs))}
		for _, fe := range fieldErrs {
			ve.Fields[fe.Field()] = validationMessage(fe)
		}
		return ve
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	}
	return "Invalid value"
}

// bodyError classifies a failure to read a form body.
func bodyError(op string, err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return domain.Errorf(domain.ETOOLARGE, op, "Your message is too large.")
	}
	return domain.Errorf(domain.EINVALID, op, "The form could not be read. Please try again.")
}
