package site

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

// LegalPage renders a privacy policy or terms document.
func LegalPage(data LegalPageData) templ.Component {
	page := data.Page

	return shared.Component(shared.Layout(data.Layout,
		Article(
			Class("mx-auto max-w-4xl"),
			H1(Class("text-4xl font-bold text-[var(--color-primary-dark)]"), g.Text(page.Title)),
			P(Class("mt-2 text-sm text-[var(--color-text-secondary)]"), g.Text(page.Updated)),
			Div(
				Class("mt-8 space-y-8 rounded-2xl bg-[var(--color-paper)] p-8 leading-relaxed shadow-sm ring-1 ring-slate-100"),
				g.Map(page.Intro, paragraph),
				g.Map(page.Sections, func(s content.LegalSection) g.Node { return legalSection(s, 2) }),
				legalContact(page.Contact),
				g.If(page.Closing != "", P(Class("border-t border-slate-200 pt-6 text-sm italic text-[var(--color-text-secondary)]"), g.Text(page.Closing))),
			),
		),
	))
}

func paragraph(text string) g.Node {
	return P(Class("mb-3"), g.Text(text))
}

func legalSection(s content.LegalSection, level int) g.Node {
	heading := H2(Class("mb-3 text-2xl font-semibold text-[var(--color-primary)]"), g.Text(s.Heading))
	if level > 2 {
		heading = H3(Class("mb-2 text-lg font-semibold"), g.Text(s.Heading))
	}
	return Section(
		heading,
		g.If(s.Lead != "", P(Class("mb-3 font-bold"), g.Text(s.Lead))),
		g.Map(s.Paragraphs, paragraph),
		g.If(len(s.Items) > 0, Ul(Class("mb-3 list-disc space-y-1 pl-6"), g.Map(s.Items, func(item string) g.Node {
			return Li(g.Text(item))
		}))),
		g.Map(s.Outro, paragraph),
		g.Map(s.Subsections, func(sub content.LegalSection) g.Node { return legalSection(sub, level+1) }),
	)
}

func legalContact(c content.LegalContact) g.Node {
	return Section(
		H2(Class("mb-3 text-2xl font-semibold text-[var(--color-primary)]"), g.Text(c.Heading)),
		P(Class("mb-3"), g.Text(c.Lead)),
		Address(
			Class("not-italic"),
			Strong(g.Text(c.Name)), Br(),
			g.Text("Email: "), A(Href("mailto:"+c.Email), Class("text-[var(--color-primary)] hover:underline"), g.Text(c.Email)), Br(),
			g.Text("Phone: "+c.Phone), Br(),
			g.Text("Address: "+c.Address),
		),
	)
}
