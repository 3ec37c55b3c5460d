package site

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/components"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

// ServicesPage renders the service portfolio.
func ServicesPage(data ServicesPageData) templ.Component {
	s := data.Layout.Site
	page := s.Services

	return shared.Component(shared.Layout(data.Layout,
		components.PageHero(s.Images, page.Hero),
		P(Class("mx-auto max-w-3xl text-center text-lg text-[var(--color-text-secondary)]"), g.Text(page.Intro)),
		Section(
			Class("mt-12"),
			components.SectionHeading("Our Service Portfolio"),
			Div(Class("grid gap-8 lg:grid-cols-2"), g.Map(page.Services, service)),
		),
		components.CTA(page.CTA),
	))
}

func service(svc content.Service) g.Node {
	return Article(
		Class("rounded-2xl bg-[var(--color-paper)] p-8 shadow-sm ring-1 ring-slate-100"),
		Span(Class("text-xs font-semibold uppercase tracking-wide text-[var(--color-secondary-dark)]"), g.Text(svc.Category)),
		H3(Class("mt-1 text-2xl font-bold"), g.Text(svc.Name)),
		P(Class("mt-3 text-[var(--color-text-secondary)]"), g.Text(svc.Description)),
		Div(
			Class("mt-6 grid gap-6 sm:grid-cols-3"),
			components.BulletList("Service Features", svc.Features),
			components.BulletList("Key Deliverables", svc.Deliverables),
			components.BulletList("Target Industries", svc.Industries),
		),
	)
}

// ProductsPage renders the product catalogue.
func ProductsPage(data ProductsPageData) templ.Component {
	s := data.Layout.Site
	page := s.Products

	return shared.Component(shared.Layout(data.Layout,
		components.PageHero(s.Images, page.Hero),
		P(Class("mx-auto max-w-3xl text-center text-lg text-[var(--color-text-secondary)]"), g.Text(page.Intro)),
		Section(
			Class("mt-12"),
			components.SectionHeading("Our Product Portfolio"),
			Div(Class("grid gap-8 lg:grid-cols-2"), g.Map(page.Products, product)),
		),
		Section(
			Class("mt-16"),
			components.SectionHeading("Industry Compliance & Certifications"),
			components.CardGrid(page.Certifications),
		),
	))
}

func product(p content.Product) g.Node {
	return Article(
		Class("rounded-2xl bg-[var(--color-paper)] p-8 shadow-sm ring-1 ring-slate-100"),
		Span(Class("text-xs font-semibold uppercase tracking-wide text-[var(--color-secondary-dark)]"), g.Text(p.Category)),
		H3(Class("mt-1 text-2xl font-bold"), g.Text(p.Name)),
		P(Class("mt-3 text-[var(--color-text-secondary)]"), g.Text(p.Description)),
		Div(
			Class("mt-6 grid gap-6 sm:grid-cols-2"),
			components.BulletList("Key Features", p.Features),
			components.BulletList("Applications", p.Applications),
		),
	)
}
