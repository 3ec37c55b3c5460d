// Package components holds the building blocks shared by page views.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/templ/shared"
)

// ButtonVariant selects a button style.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
)

const buttonBase = "inline-flex items-center justify-center gap-2 rounded-lg px-5 py-3 text-base font-semibold transition-colors focus:outline-none focus-visible:ring-2 focus-visible:ring-offset-2"

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary:   "bg-[var(--color-primary)] text-white hover:bg-[var(--color-primary-dark)] focus-visible:ring-[var(--color-primary)]",
	ButtonSecondary: "bg-[var(--color-secondary)] text-white hover:bg-[var(--color-secondary-dark)] focus-visible:ring-[var(--color-secondary)]",
	ButtonOutline:   "border-2 border-[var(--color-primary)] bg-transparent text-[var(--color-primary)] hover:bg-[var(--color-primary)] hover:text-white",
}

// ButtonClass returns the class list for variant with extra appended.
func ButtonClass(variant ButtonVariant, extra ...string) string {
	lists := append([]string{buttonBase, buttonVariants[variant]}, extra...)
	return shared.Classes(lists...)
}

// LinkButton is an anchor styled as a button.
func LinkButton(variant ButtonVariant, href, label string) g.Node {
	return A(Href(href), Class(ButtonClass(variant)), g.Text(label))
}

// SubmitButton is a form submit button. A disabled button is dimmed.
func SubmitButton(label string, disabled bool) g.Node {
	cls := ButtonClass(ButtonPrimary, "w-full")
	if disabled {
		cls = ButtonClass(ButtonPrimary, "w-full", "cursor-not-allowed bg-slate-400 hover:bg-slate-400")
	}
	return Button(
		Type("submit"),
		Class(cls),
		g.If(disabled, Disabled()),
		g.Text(label),
	)
}
