package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

const (
	dotBase   = "h-3 w-3 rounded-full bg-white/50 hover:bg-white"
	dotActive = "w-8 bg-white"
)

// Carousel renders slide current of c with previous, next and per-slide links
// back to path.
func Carousel(images content.ImageSet, c content.Carousel, path string, current int) g.Node {
	slide, ok := c.Slide(current)
	if !ok {
		return nil
	}
	current = c.Normalize(current)

	return Section(
		Class("relative my-12 overflow-hidden rounded-2xl shadow-xl"),
		Aria("roledescription", "carousel"),
		Aria("label", "Highlights"),
		Div(
			Class("relative"),
			Aria("roledescription", "slide"),
			Aria("label", strconv.Itoa(current+1)+" of "+strconv.Itoa(c.Len())),
			ResponsiveImage(images, slide.Image, slide.Title, 1920, "h-96 w-full object-cover"),
			Div(
				Class("absolute inset-0 flex flex-col justify-end bg-gradient-to-t from-black/70 to-transparent p-8 text-white"),
				Span(Class("mb-2 text-sm font-semibold uppercase tracking-wide text-[var(--color-secondary-light)]"), g.Text(slide.Category)),
				H3(Class("text-3xl font-bold"), g.Text(slide.Title)),
				P(Class("mt-2 max-w-2xl text-lg text-white/90"), g.Text(slide.Description)),
			),
		),
		A(
			Href(c.Href(path, c.Prev(current))),
			Class("absolute left-4 top-1/2 -translate-y-1/2 rounded-full bg-black/40 px-3 py-2 text-white hover:bg-black/60"),
			Aria("label", "Previous slide"),
			g.Text("‹"),
		),
		A(
			Href(c.Href(path, c.Next(current))),
			Class("absolute right-4 top-1/2 -translate-y-1/2 rounded-full bg-black/40 px-3 py-2 text-white hover:bg-black/60"),
			Aria("label", "Next slide"),
			g.Text("›"),
		),
		Div(
			Class("absolute bottom-4 left-1/2 flex -translate-x-1/2 gap-2"),
			g.Map(indexes(c.Len()), func(i int) g.Node {
				cls := dotBase
				if i == current {
					cls = shared.Classes(dotBase, dotActive)
				}
				return A(
					Href(c.Href(path, i)),
					Class(cls),
					Aria("label", "Go to slide "+strconv.Itoa(i+1)),
					g.If(i == current, Aria("current", "true")),
				)
			}),
		),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
