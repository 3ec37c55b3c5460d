package site

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/components"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

// AboutPage renders the company story.
func AboutPage(data AboutPageData) templ.Component {
	s := data.Layout.Site
	about := s.About

	return shared.Component(shared.Layout(data.Layout,
		components.PageHero(s.Images, about.Hero),
		P(Class("mx-auto max-w-3xl text-center text-lg text-[var(--color-text-secondary)]"), g.Text(about.Intro)),
		Section(
			Class("mt-12 grid gap-6 md:grid-cols-2"),
			components.InfoCard(content.Card{Title: "Our Mission", Description: about.Mission}),
			components.InfoCard(content.Card{Title: "Our Vision", Description: about.Vision}),
		),
		Section(
			Class("mt-16"),
			components.SectionHeading("Our Core Values"),
			Div(Class("grid gap-6 md:grid-cols-2 lg:grid-cols-4"), g.Map(about.Values, components.InfoCard)),
		),
		Section(
			Class("mt-16"),
			components.SectionHeading("Leadership Team"),
			Div(Class("grid gap-6 md:grid-cols-3"), g.Map(about.Team, teamMember)),
		),
		Section(
			Class("mt-16"),
			components.SectionHeading("Our Journey"),
			Ol(Class("relative mx-auto max-w-3xl border-l-2 border-[var(--color-primary-light)]"), g.Map(about.Milestones, milestone)),
		),
		components.CTA(about.CTA),
	))
}

func teamMember(m content.TeamMember) g.Node {
	return Article(
		Class("rounded-2xl bg-[var(--color-paper)] p-6 text-center shadow-sm ring-1 ring-slate-100"),
		H3(Class("text-xl font-semibold"), g.Text(m.Name)),
		P(Class("font-medium text-[var(--color-primary)]"), g.Text(m.Position)),
		P(Class("mt-3 text-sm text-[var(--color-text-secondary)]"), g.Text(m.Background)),
		P(Class("mt-2 text-sm"), Strong(g.Text("Expertise: ")), g.Text(m.Expertise)),
	)
}

func milestone(m content.Milestone) g.Node {
	return Li(
		Class("mb-8 ml-6"),
		Span(Class("absolute -left-2 mt-1.5 h-4 w-4 rounded-full bg-[var(--color-primary)]")),
		g.El("time", Class("text-sm font-bold text-[var(--color-secondary-dark)]"), g.Text(m.Year)),
		H3(Class("text-lg font-semibold"), g.Text(m.Title)),
		P(Class("text-[var(--color-text-secondary)]"), g.Text(m.Description)),
	)
}
