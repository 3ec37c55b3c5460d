package site

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/components"
	"github.com/DukeRupert/florian/internal/templ/components/pagination"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

const (
	chipBase   = "rounded-full border border-slate-300 px-4 py-1.5 text-sm text-[var(--color-text-secondary)] hover:border-[var(--color-primary)] hover:text-[var(--color-primary)]"
	chipActive = "border-[var(--color-primary)] bg-[var(--color-primary)] text-white hover:text-white"
)

// BlogPage renders the article index.
func BlogPage(data BlogPageData) templ.Component {
	s := data.Layout.Site
	blog := s.Blog

	return shared.Component(shared.Layout(data.Layout,
		components.PageHero(s.Images, blog.Hero),
		Section(
			Class("text-center"),
			H2(Class("mb-4 text-xl font-semibold"), g.Text("Browse by Category")),
			Div(Class("flex flex-wrap justify-center gap-2"), g.Map(blog.Categories, func(c string) g.Node {
				return categoryChip(c, data.Category)
			})),
		),
		Section(
			Class("mt-12"),
			components.SectionHeading("Featured Article"),
			featuredPost(blog.Featured),
		),
		Section(
			Class("mt-16"),
			components.SectionHeading("Recent Articles"),
			g.If(len(data.Posts) == 0, P(Class("text-center text-[var(--color-text-secondary)]"), g.Text("No articles in this category yet."))),
			Div(Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"), g.Map(data.Posts, postCard)),
			pagination.Links(data.Pagination, blogURL(data.BaseURL)),
		),
		Section(
			Class("mt-16 rounded-2xl bg-[var(--color-paper)] p-10 text-center shadow-sm ring-1 ring-slate-100"),
			H2(Class("text-2xl font-bold"), g.Text(blog.Newsletter.Title)),
			P(Class("mx-auto mt-3 max-w-xl text-[var(--color-text-secondary)]"), g.Text(blog.Newsletter.Description)),
			Div(Class("mt-6"), components.LinkButton(components.ButtonPrimary, blog.Newsletter.Href, blog.Newsletter.Label)),
		),
	))
}

func blogURL(u *url.URL) *url.URL {
	if u == nil {
		return &url.URL{Path: "/blog"}
	}
	return u
}

func categoryChip(category, selected string) g.Node {
	href := "/blog"
	if category != content.CategoryAll {
		href += "?" + url.Values{"category": {category}}.Encode()
	}
	active := strings.EqualFold(category, selected)
	cls := chipBase
	if active {
		cls = shared.Classes(chipBase, chipActive)
	}
	return A(Href(href), Class(cls), g.If(active, Aria("current", "true")), g.Text(category))
}

func postMeta(p content.Post, date string) g.Node {
	return P(
		Class("text-sm text-[var(--color-text-secondary)]"),
		g.Text(p.Author+" · "),
		g.El("time", g.Attr("datetime", p.ISODate()), g.Text(date)),
		g.Text(" · "+p.ReadTime),
	)
}

func featuredPost(p content.Post) g.Node {
	return Article(
		Class("rounded-2xl bg-[var(--color-paper)] p-8 shadow-md ring-1 ring-slate-100"),
		Span(Class("text-xs font-semibold uppercase tracking-wide text-[var(--color-secondary-dark)]"), g.Text(p.Category)),
		H3(Class("mt-2 text-3xl font-bold"), g.Text(p.Title)),
		P(Class("mt-4 text-lg text-[var(--color-text-secondary)]"), g.Text(p.Excerpt)),
		Div(Class("mt-4"), postMeta(p, p.LongDate())),
		Div(Class("mt-6"), components.LinkButton(components.ButtonPrimary, p.Href(), "Read Full Article")),
	)
}

func postCard(p content.Post) g.Node {
	return Article(
		Class("flex flex-col rounded-2xl bg-[var(--color-paper)] p-6 shadow-sm ring-1 ring-slate-100"),
		Span(Class("text-xs font-semibold uppercase tracking-wide text-[var(--color-secondary-dark)]"), g.Text(p.Category)),
		H3(Class("mt-2 text-lg font-semibold"), g.Text(p.Title)),
		P(Class("mt-2 flex-1 text-sm text-[var(--color-text-secondary)]"), g.Text(p.Excerpt)),
		Div(Class("mt-4"), postMeta(p, p.ShortDate())),
		A(Href(p.Href()), Class("mt-4 font-semibold text-[var(--color-primary)] hover:underline"), g.Text("Read More →")),
	)
}
