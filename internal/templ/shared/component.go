// Package shared holds the layout, flash banners and class helpers used by
// every page.
package shared

import (
	"context"
	"io"

	"github.com/a-h/templ"
	twmerge "github.com/Oudwins/tailwind-merge-go"
	g "maragu.dev/gomponents"
)

// Component exposes a gomponents node as a templ.Component so handlers can
// render every view through the same interface.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return n.Render(w)
	})
}

// WithLayout renders body inside Layout. body receives the caller's
// context, so templ views compose with the gomponents document shell.
func WithLayout(data LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return Layout(data, g.NodeFunc(func(w io.Writer) error {
			return body.Render(ctx, w)
		})).Render(w)
	})
}

// Classes merges Tailwind class lists. Later lists win on conflicts, so a
// variant can override a base class.
func Classes(lists ...string) string {
	return twmerge.Merge(lists...)
}
