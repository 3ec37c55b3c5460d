package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/florian/internal/templ/shared"
)

// FieldProps configures a labelled form control.
type FieldProps struct {
	Name         string
	Label        string
	Type         string // input type; ignored for textarea and select
	Value        string
	Error        string // shown instead of Help when set
	Help         string
	Required     bool
	MaxLength    int
	Rows         int // >0 renders a textarea
	AutoComplete string
	Placeholder  string
}

// SelectOption is a select choice.
type SelectOption struct {
	Value string
	Label string
}

const (
	controlBase    = "block w-full rounded-lg border border-slate-300 bg-white px-3 py-2 text-base shadow-sm focus:border-[var(--color-primary)] focus:outline-none focus:ring-2 focus:ring-[var(--color-primary)]/30"
	controlInvalid = "border-red-500 focus:border-red-500 focus:ring-red-500/30"
	helpBase       = "mt-1 text-sm text-[var(--color-text-secondary)]"
	helpInvalid    = "text-red-600"
)

func controlClass(invalid bool) string {
	if invalid {
		return shared.Classes(controlBase, controlInvalid)
	}
	return controlBase
}

func controlID(name string) string { return "field-" + name }
func helpID(name string) string    { return "field-" + name + "-help" }

func controlAttrs(p FieldProps) g.Group {
	invalid := p.Error != ""
	return g.Group{
		ID(controlID(p.Name)),
		Name(p.Name),
		Class(controlClass(invalid)),
		g.If(p.Required, Required()),
		g.If(p.Required, Aria("required", "true")),
		g.If(invalid, Aria("invalid", "true")),
		g.If(p.Error != "" || p.Help != "", Aria("describedby", helpID(p.Name))),
		g.If(p.MaxLength > 0, g.Attr("maxlength", strconv.Itoa(p.MaxLength))),
		g.If(p.AutoComplete != "", g.Attr("autocomplete", p.AutoComplete)),
		g.If(p.Placeholder != "", Placeholder(p.Placeholder)),
	}
}

func fieldLabel(p FieldProps) g.Node {
	return LabelEl(
		For(controlID(p.Name)),
		Class("mb-1 block text-sm font-medium text-[var(--color-text-primary)]"),
		g.Text(p.Label),
		g.If(p.Required, Span(Class("text-red-600"), Aria("hidden", "true"), g.Text(" *"))),
	)
}

func fieldHelp(p FieldProps) g.Node {
	text := p.Help
	cls := helpBase
	if p.Error != "" {
		text = p.Error
		cls = shared.Classes(helpBase, helpInvalid)
	}
	if text == "" {
		return nil
	}
	return P(ID(helpID(p.Name)), Class(cls), g.Text(text))
}

// Field renders a labelled input or, when Rows is set, a textarea.
func Field(p FieldProps) g.Node {
	var control g.Node
	if p.Rows > 0 {
		control = Textarea(controlAttrs(p), g.Attr("rows", strconv.Itoa(p.Rows)), g.Text(p.Value))
	} else {
		typ := p.Type
		if typ == "" {
			typ = "text"
		}
		control = Input(controlAttrs(p), Type(typ), Value(p.Value))
	}
	return Div(fieldLabel(p), control, fieldHelp(p))
}

// SelectField renders a labelled select with an empty first choice.
func SelectField(p FieldProps, options []SelectOption) g.Node {
	return Div(
		fieldLabel(p),
		Select(
			controlAttrs(p),
			Option(Value(""), g.If(p.Value == "", Selected())),
			g.Map(options, func(o SelectOption) g.Node {
				return Option(Value(o.Value), g.If(o.Value == p.Value, Selected()), g.Text(o.Label))
			}),
		),
		fieldHelp(p),
	)
}
