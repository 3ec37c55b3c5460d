// Package site renders the static marketing pages.
package site

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/components"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

// HomePage renders the landing page.
func HomePage(data HomePageData) templ.Component {
	s := data.Layout.Site
	home := s.Home

	return shared.Component(shared.Layout(data.Layout,
		Section(
			Class("py-12 text-center"),
			H1(
				Class("text-4xl font-extrabold tracking-tight sm:text-6xl"),
				g.Map(home.Headline, headlinePart),
			),
			P(Class("mx-auto mt-6 max-w-3xl text-xl text-[var(--color-text-secondary)]"), g.Text(home.Subtitle)),
			P(Class("mx-auto mt-4 max-w-3xl font-semibold text-[var(--color-primary)]"), g.Text(home.Promise)),
			Div(
				Class("mt-8 flex flex-wrap justify-center gap-4"),
				g.Map(home.Actions, func(c content.Card) g.Node {
					variant := components.ButtonPrimary
					if c.Href == "/services" {
						variant = components.ButtonOutline
					}
					return components.LinkButton(variant, c.Href, c.LinkLabel)
				}),
			),
		),
		components.Carousel(s.Images, s.Carousel, "/", data.Slide),
		Section(
			Class("mt-16"),
			components.SectionHeading("Our Foundation"),
			components.CardGrid(home.Foundation),
		),
		Section(
			Class("mt-16"),
			components.SectionHeading("Explore Our Solutions"),
			components.CardGrid(home.Solutions),
		),
	))
}

func headlinePart(p content.HeadlinePart) g.Node {
	switch {
	case p.Highlight:
		return Span(Class("bg-gradient-to-r from-[var(--color-primary)] to-[var(--color-secondary)] bg-clip-text text-transparent"), g.Text(p.Text))
	case p.Thin:
		return Span(Class("font-light text-[var(--color-text-secondary)]"), g.Text(p.Text))
	default:
		return g.Text(p.Text)
	}
}
