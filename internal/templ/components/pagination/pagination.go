// Package pagination splits list pages and renders their page links.
package pagination

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/templ/shared"
)

// Data contains pagination information for display.
type Data struct {
	CurrentPage int
	TotalPages  int
	PerPage     int
	Total       int
	HasPrevious bool
	HasNext     bool
	PrevPage    int
	NextPage    int
}

// New computes Data for total items shown perPage at a time. page is
// clamped to the valid range.
func New(total, perPage, page int) Data {
	if perPage < 1 {
		perPage = 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return Data{
		CurrentPage: page,
		TotalPages:  pages,
		PerPage:     perPage,
		Total:       total,
		HasPrevious: page > 1,
		HasNext:     page < pages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}
}

// Bounds returns the half-open item range [start, end) of the current page.
func (d Data) Bounds() (start, end int) {
	start = (d.CurrentPage - 1) * d.PerPage
	end = start + d.PerPage
	if start > d.Total {
		start = d.Total
	}
	if end > d.Total {
		end = d.Total
	}
	return start, end
}

// Page returns the items of the current page.
func Page[T any](items []T, d Data) []T {
	start, end := d.Bounds()
	return items[start:end]
}

// ParsePage reads a ?page= value, defaulting to 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// PageRange returns a slice of page numbers for pagination display.
// Returns -1 for ellipsis positions.
func PageRange(currentPage, totalPages int) []int {
	if totalPages <= 7 {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	pages := []int{1}

	start := currentPage - 1
	end := currentPage + 1

	if start <= 2 {
		start = 2
	}
	if end >= totalPages {
		end = totalPages - 1
	}

	if start > 2 {
		pages = append(pages, -1) // ellipsis
	}

	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	if end < totalPages-1 {
		pages = append(pages, -1) // ellipsis
	}

	if totalPages > 1 {
		pages = append(pages, totalPages)
	}

	return pages
}

// PageHref links to page n of base, keeping its other query parameters.
func PageHref(base *url.URL, n int) string {
	u := *base
	q := u.Query()
	if n <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(n))
	}
	u.RawQuery = q.Encode()
	if u.RawQuery == "" {
		return u.Path
	}
	return u.Path + "?" + u.RawQuery
}

const (
	linkBase   = "rounded-md px-3 py-1 text-sm text-[var(--color-text-secondary)] hover:bg-slate-100"
	linkActive = "bg-[var(--color-primary)] text-white hover:bg-[var(--color-primary)]"
)

// Links renders page links. It renders nothing for a single page.
func Links(d Data, base *url.URL) g.Node {
	if d.TotalPages <= 1 {
		return nil
	}
	return h.Nav(
		h.Class("mt-8 flex items-center justify-center gap-1"),
		h.Aria("label", "Pagination"),
		g.If(d.HasPrevious, h.A(h.Href(PageHref(base, d.PrevPage)), h.Class(linkBase), g.Text("Previous"))),
		g.Map(PageRange(d.CurrentPage, d.TotalPages), func(n int) g.Node {
			if n < 0 {
				return h.Span(h.Class("px-2 text-slate-400"), g.Text("…"))
			}
			if n == d.CurrentPage {
				return h.Span(h.Class(shared.Classes(linkBase, linkActive)), h.Aria("current", "page"), g.Text(strconv.Itoa(n)))
			}
			return h.A(h.Href(PageHref(base, n)), h.Class(linkBase), g.Text(strconv.Itoa(n)))
		}),
		g.If(d.HasNext, h.A(h.Href(PageHref(base, d.NextPage)), h.Class(linkBase), g.Text("Next"))),
	)
}
