package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

// Renderer writes templ components as HTML responses and builds the layout
// data every page shares.
type Renderer struct {
	site   *content.Site
	logger *slog.Logger
	now    func() time.Time
}

// NewRenderer creates a Renderer for site.
func NewRenderer(site *content.Site, logger *slog.Logger) *Renderer {
	return &Renderer{
		site:   site,
		logger: logger,
		now:    time.Now,
	}
}

// Site returns the content the renderer was built with.
func (rn *Renderer) Site() *content.Site {
	return rn.site
}

// Layout returns the layout data for the page key on the current request.
func (rn *Renderer) Layout(r *http.Request, key content.PageKey) shared.LayoutData {
	return shared.LayoutData{
		Site: rn.site,
		Meta: rn.site.Metadata(key),
		Path: r.URL.Path,
		Year: rn.now().Year(),
	}
}

// Render writes c with the given status. The component is rendered to a
// buffer first so a failure can still produce a clean 500.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		rn.logger.Error("template execution failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
