package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/content"
)

// PageHero is the banner image, headline and badges at the top of a page.
func PageHero(images content.ImageSet, hero content.Hero) g.Node {
	return Section(
		Class("mb-12 grid items-center gap-8 lg:grid-cols-2"),
		Div(
			H1(
				Class("text-4xl font-bold tracking-tight text-[var(--color-primary-dark)] sm:text-5xl"),
				g.Text(hero.Title),
			),
			P(Class("mt-4 text-lg text-[var(--color-text-secondary)]"), g.Text(hero.Subtitle)),
			g.If(hero.Badges != "", P(
				Class("mt-4 inline-block rounded-full bg-[var(--color-primary)]/10 px-4 py-1 text-sm font-semibold text-[var(--color-primary)]"),
				g.Text(hero.Badges),
			)),
		),
		g.If(hero.Image != "", ResponsiveImage(images, hero.Image, hero.ImageAlt, 1200, "rounded-2xl shadow-lg")),
	)
}

// ResponsiveImage renders name through the resizing endpoint with a srcset
// capped at max pixels wide.
func ResponsiveImage(images content.ImageSet, name, alt string, max int, class string) g.Node {
	return Img(
		Src(images.Src(name, max)),
		g.Attr("srcset", images.SrcSet(name, max)),
		g.Attr("sizes", "(max-width: 1024px) 100vw, 50vw"),
		Alt(alt),
		Class(class),
		g.Attr("loading", "lazy"),
	)
}

// SectionHeading is a centered h2.
func SectionHeading(text string) g.Node {
	return H2(
		Class("mb-8 text-center text-3xl font-bold text-[var(--color-text-primary)]"),
		g.Text(text),
	)
}

// CardGrid lays out cards in a responsive grid.
func CardGrid(cards []content.Card) g.Node {
	return Div(
		Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
		g.Map(cards, InfoCard),
	)
}

// InfoCard is an icon, title, description and optional link.
func InfoCard(c content.Card) g.Node {
	return Article(
		Class("rounded-2xl bg-[var(--color-paper)] p-6 shadow-sm ring-1 ring-slate-100"),
		g.If(c.Icon != "", Div(Class("mb-3 text-4xl"), Aria("hidden", "true"), g.Text(c.Icon))),
		H3(Class("text-xl font-semibold text-[var(--color-text-primary)]"), g.Text(c.Title)),
		P(Class("mt-2 text-[var(--color-text-secondary)]"), g.Text(c.Description)),
		g.If(c.Href != "", Div(Class("mt-4"), LinkButton(ButtonOutline, c.Href, c.LinkLabel))),
	)
}

// BulletList renders items under a small heading, or nothing when empty.
func BulletList(heading string, items []string) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Div(
		H4(Class("mb-2 text-sm font-semibold uppercase tracking-wide text-[var(--color-primary)]"), g.Text(heading)),
		Ul(
			Class("list-disc space-y-1 pl-5 text-sm text-[var(--color-text-secondary)]"),
			g.Map(items, func(s string) g.Node { return Li(g.Text(s)) }),
		),
	)
}

// CTA is the closing call to action.
func CTA(c content.CallToAction) g.Node {
	return Section(
		Class("mt-16 rounded-2xl bg-[var(--color-primary)] px-6 py-12 text-center text-white"),
		H2(Class("text-3xl font-bold"), g.Text(c.Title)),
		P(Class("mx-auto mt-4 max-w-2xl text-lg text-white/90"), g.Text(c.Description)),
		Div(Class("mt-8"), LinkButton(ButtonSecondary, c.Href, c.Label)),
	)
}
