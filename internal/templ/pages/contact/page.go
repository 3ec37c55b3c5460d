// Package contact renders the contact page and its form.
package contact

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	contactform "github.com/DukeRupert/florian/internal/contact"
	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/csrf"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/templ/components"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

// Page renders the contact page.
func Page(data PageData) templ.Component {
	s := data.Layout.Site
	page := s.Contact

	return shared.Component(shared.Layout(data.Layout,
		components.PageHero(s.Images, page.Hero),
		P(Class("mx-auto max-w-3xl text-center text-lg text-[var(--color-text-secondary)]"), g.Text(page.Intro)),
		Section(
			Class("mt-12"),
			components.SectionHeading("How to Reach Us"),
			Div(Class("grid gap-6 md:grid-cols-2 lg:grid-cols-4"), g.Map(page.Methods, method)),
		),
		Section(
			Class("mt-16 grid gap-10 lg:grid-cols-2"),
			Div(
				H2(Class("mb-6 text-3xl font-bold"), g.Text("Send Us a Message")),
				ContactForm(data.Form, data.CSRFToken, page),
			),
			Div(
				H2(Class("mb-6 text-3xl font-bold"), g.Text("Department Contacts")),
				Div(Class("space-y-4"), g.Map(page.Departments, department)),
				emergency(page.Emergency),
			),
		),
	))
}

func method(m content.ContactMethod) g.Node {
	return Article(
		Class("rounded-2xl bg-[var(--color-paper)] p-6 text-center shadow-sm ring-1 ring-slate-100"),
		Div(Class("mb-3 text-3xl"), Aria("hidden", "true"), g.Text(m.Icon)),
		H3(Class("text-lg font-semibold"), g.Text(m.Title)),
		P(Class("mt-2 font-medium"), g.Text(m.Primary)),
		P(Class("text-sm text-[var(--color-text-secondary)]"), g.Text(m.Secondary)),
		P(Class("mt-2 text-sm text-[var(--color-text-secondary)]"), g.Text(m.Description)),
	)
}

func department(d content.Department) g.Node {
	return Article(
		Class("rounded-xl bg-[var(--color-paper)] p-5 shadow-sm ring-1 ring-slate-100"),
		H3(Class("font-semibold"), g.Text(d.Name)),
		A(Href("mailto:"+d.Email), Class("text-[var(--color-primary)] hover:underline"), g.Text(d.Email)),
		P(Class("mt-1 text-sm text-[var(--color-text-secondary)]"), g.Text(d.Description)),
	)
}

func emergency(e content.Emergency) g.Node {
	return Article(
		Class("mt-6 rounded-xl border-2 border-[var(--color-secondary)] bg-[var(--color-paper)] p-6"),
		H3(Class("text-xl font-semibold text-[var(--color-secondary-dark)]"), g.Text(e.Title)),
		P(Class("mt-2 text-[var(--color-text-secondary)]"), g.Text(e.Description)),
		H4(Class("mt-4 font-semibold text-[var(--color-primary)]"), g.Text(e.Hotline)),
		P(Class("text-lg font-semibold"), g.Text(e.Phone)),
	)
}

// ContactForm renders the contact form for state. Field errors appear only on
// touched fields.
func ContactForm(state contactform.State, csrfToken string, page content.ContactPage) g.Node {
	field := func(f domain.ContactField, typ, autocomplete string) components.FieldProps {
		return components.FieldProps{
			Name:         f.String(),
			Label:        f.Label(),
			Type:         typ,
			Value:        state.Values.Get(f),
			Error:        state.VisibleError(f),
			Required:     f.Required(),
			MaxLength:    domain.MaxLength(f),
			AutoComplete: autocomplete,
		}
	}

	projectType := field(domain.FieldProjectType, "", "")
	projectType.Help = content.ProjectTypeHelp
	projectType.MaxLength = 0

	message := field(domain.FieldMessage, "", "")
	message.Rows = 10
	message.Placeholder = "Tell us about your project, requirements, or questions..."

	return Div(
		Class("rounded-2xl bg-[var(--color-paper)] p-8 shadow-md ring-1 ring-slate-100"),
		H3(Class("mb-6 text-2xl font-semibold"), g.Text(page.FormTitle)),
		statusBanner(state.Status, page),
		FormEl(
			Method("post"),
			Action("/contact"),
			g.Attr("novalidate"),
			Class("mt-4 space-y-5"),
			Input(Type("hidden"), Name(csrf.FormFieldName), Value(csrfToken)),
			Div(
				Class("grid gap-5 sm:grid-cols-2"),
				components.Field(field(domain.FieldFirstName, "text", "given-name")),
				components.Field(field(domain.FieldLastName, "text", "family-name")),
			),
			components.Field(field(domain.FieldEmail, "email", "email")),
			components.Field(field(domain.FieldCompany, "text", "organization")),
			components.SelectField(projectType, projectTypeOptions()),
			components.Field(message),
			components.SubmitButton(state.SubmitLabel(), state.Submitting),
		),
	)
}

func statusBanner(status contactform.Status, page content.ContactPage) g.Node {
	switch status {
	case contactform.StatusSuccess:
		return shared.FlashBanner(&shared.Flash{Type: shared.FlashSuccess, Message: page.Success})
	case contactform.StatusError:
		return shared.FlashBanner(&shared.Flash{Type: shared.FlashError, Message: page.Failure})
	}
	return nil
}

func projectTypeOptions() []components.SelectOption {
	opts := make([]components.SelectOption, 0, len(domain.ProjectTypes))
	for _, p := range domain.ProjectTypes {
		opts = append(opts, components.SelectOption{Value: p.String(), Label: p.Label()})
	}
	return opts
}
