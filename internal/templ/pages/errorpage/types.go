// Package errorpage renders full-page error responses.
package errorpage

import (
	"github.com/a-h/templ"

	"github.com/DukeRupert/florian/internal/templ/shared"
)

// PageData contains data for an error page.
type PageData struct {
	Layout  shared.LayoutData
	Status  int
	Title   string
	Message string
}

// Page renders an error page with a link back home.
func Page(data PageData) templ.Component {
	return shared.WithLayout(data.Layout, body(data))
}
