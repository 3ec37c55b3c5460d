package contact

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactform "github.com/DukeRupert/florian/internal/contact"
	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

func renderPage(t *testing.T, state contactform.State) string {
	t.Helper()
	site := content.Default()
	data := PageData{
		Layout: shared.LayoutData{
			Site: site,
			Meta: site.Metadata(content.PageContact),
			Path: "/contact",
			Year: 2026,
		},
		Form:      state,
		CSRFToken: "tok123",
	}
	var buf bytes.Buffer
	require.NoError(t, Page(data).Render(context.Background(), &buf))
	return buf.String()
}

func TestPage_Idle(t *testing.T) {
	html := renderPage(t, contactform.State{Status: contactform.StatusIdle})

	assert.Contains(t, html, `name="csrf_token" value="tok123"`)
	assert.Contains(t, html, "Send Message")
	assert.Contains(t, html, content.ProjectTypeHelp)
	assert.Contains(t, html, "Department Contacts")
	assert.Contains(t, html, "compliance@florian-technologies.com")
	assert.NotContains(t, html, `role="alert"`)
	assert.NotContains(t, html, domain.MsgEmailInvalid)
}

func TestPage_OnlyTouchedErrorsShow(t *testing.T) {
	state := contactform.State{
		Values: domain.ContactSubmission{Email: "bad", FirstName: "J"},
		Errors: contactform.FieldErrors{
			Email:     domain.MsgEmailInvalid,
			FirstName: domain.MsgFirstNameTooShort,
		},
		Touched: contactform.Touched{Email: true},
	}
	html := renderPage(t, state)

	assert.Contains(t, html, domain.MsgEmailInvalid)
	assert.NotContains(t, html, domain.MsgFirstNameTooShort)
	assert.Contains(t, html, `value="bad"`)
}

func TestPage_ProjectTypeErrorReplacesHelp(t *testing.T) {
	state := contactform.State{
		Errors:  contactform.FieldErrors{ProjectType: domain.MsgProjectTypeEmpty},
		Touched: contactform.Touched{ProjectType: true},
	}
	html := renderPage(t, state)

	assert.Contains(t, html, domain.MsgProjectTypeEmpty)
	assert.NotContains(t, html, content.ProjectTypeHelp)
}

func TestPage_Banners(t *testing.T) {
	site := content.Default()

	html := renderPage(t, contactform.State{Status: contactform.StatusSuccess})
	assert.Contains(t, html, site.Contact.Success)

	html = renderPage(t, contactform.State{Status: contactform.StatusError})
	assert.Contains(t, html, site.Contact.Failure)
	assert.Contains(t, html, `role="alert"`)
}

func TestPage_Submitting(t *testing.T) {
	html := renderPage(t, contactform.State{Submitting: true})
	assert.Contains(t, html, "Sending...")
	assert.Contains(t, html, " disabled")
}
