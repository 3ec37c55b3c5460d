package contact

import (
	contactform "github.com/DukeRupert/florian/internal/contact"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

// PageData contains data for the contact page.
type PageData struct {
	Layout    shared.LayoutData
	Form      contactform.State
	CSRFToken string
}
