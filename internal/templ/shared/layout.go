package shared

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/content"
)

// LayoutData is what every page passes to Layout.
type LayoutData struct {
	Site  *content.Site
	Meta  content.Metadata
	Path  string
	Flash *Flash
	Year  int
}

// Layout wraps body in the document shell: head metadata, header navigation
// and footer.
func Layout(data LayoutData, body ...g.Node) g.Node {
	site := data.Site
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(data.Meta.Title)),
				Meta(Name("description"), Content(data.Meta.Description)),
				g.If(data.Meta.Keywords != "", Meta(Name("keywords"), Content(data.Meta.Keywords))),
				Meta(Name("theme-color"), Content(site.Theme.Primary)),
				Link(Rel("canonical"), Href(data.Meta.Canonical)),
				Link(Rel("icon"), Href("/static/favicon.ico")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				StyleEl(g.Raw(themeVars(site.Theme))),
			),
			Body(
				ID("top"),
				Class("min-h-screen bg-[var(--color-background)] text-[var(--color-text-primary)] antialiased"),
				header(site, data.Path),
				Main(
					Class("mx-auto max-w-7xl px-4 py-10 sm:px-6 lg:px-8"),
					g.If(data.Flash != nil, Div(Class("mb-6"), FlashBanner(data.Flash))),
					g.Group(body),
				),
				footer(site, data.Year),
				A(
					Href("#top"),
					Class("fixed bottom-6 right-6 rounded-full bg-[var(--color-primary)] p-3 text-white shadow-lg hover:bg-[var(--color-primary-dark)]"),
					Aria("label", "Back to top"),
					g.Text("↑"),
				),
			),
		),
	})
}

func themeVars(t content.Theme) string {
	return fmt.Sprintf(":root{--color-primary:%s;--color-primary-light:%s;--color-primary-dark:%s;"+
		"--color-secondary:%s;--color-secondary-light:%s;--color-secondary-dark:%s;"+
		"--color-background:%s;--color-paper:%s;--color-text-primary:%s;--color-text-secondary:%s}",
		t.Primary, t.PrimaryLight, t.PrimaryDark,
		t.Secondary, t.SecondaryLight, t.SecondaryDark,
		t.Background, t.Paper, t.TextPrimary, t.TextSecondary)
}

const (
	navLinkBase   = "rounded-md px-3 py-2 text-sm font-medium text-[var(--color-text-secondary)] hover:text-[var(--color-primary)]"
	navLinkActive = "text-[var(--color-primary)] font-semibold underline underline-offset-8"
)

func header(site *content.Site, path string) g.Node {
	return Header(
		Class("sticky top-0 z-40 border-b border-slate-200 bg-white/90 backdrop-blur"),
		Nav(
			Class("mx-auto flex max-w-7xl items-center justify-between px-4 py-3 sm:px-6 lg:px-8"),
			Aria("label", "Main"),
			A(
				Href("/"),
				Class("flex items-center gap-2"),
				Img(
					Src(site.Images.Src(content.ImageTitle, 256)),
					Alt(site.Name),
					Class("h-10 w-auto"),
				),
			),
			Ul(
				Class("flex flex-wrap items-center gap-1"),
				g.Map(site.Nav, func(item content.NavItem) g.Node {
					active := item.IsActive(path)
					cls := navLinkBase
					if active {
						cls = Classes(navLinkBase, navLinkActive)
					}
					return Li(A(
						Href(item.Href),
						Class(cls),
						g.If(active, Aria("current", "page")),
						g.Text(item.Label),
					))
				}),
			),
		),
	)
}

func footer(site *content.Site, year int) g.Node {
	return Footer(
		Class("mt-16 bg-[var(--color-text-primary)] text-slate-200"),
		Div(
			Class("mx-auto max-w-7xl px-4 py-10 text-center sm:px-6 lg:px-8"),
			BlockQuote(
				Class("mx-auto max-w-2xl text-lg italic"),
				g.Text("“"+site.Quote+"”"),
			),
			Ul(
				Class("mt-6 flex justify-center gap-6 text-sm"),
				g.Map(site.Footer, func(item content.NavItem) g.Node {
					return Li(A(Href(item.Href), Class("hover:text-white"), g.Text(item.Label)))
				}),
			),
			P(
				Class("mt-6 text-sm text-slate-400"),
				g.Text("© "+strconv.Itoa(year)+" "+site.Name+". All rights reserved."),
			),
			P(Class("mt-1 text-xs text-slate-400"), g.Text(site.Tagline)),
		),
	)
}
