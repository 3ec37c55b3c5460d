package shared

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FlashType selects the colour of a banner.
type FlashType string

const (
	FlashSuccess FlashType = "success"
	FlashError   FlashType = "error"
	FlashInfo    FlashType = "info"
)

// Flash is a one-off status message shown above page content.
type Flash struct {
	Type    FlashType
	Message string
}

const flashBase = "rounded-xl border px-4 py-3 text-sm font-medium"

var flashVariants = map[FlashType]string{
	FlashSuccess: "border-green-200 bg-green-50 text-green-800",
	FlashError:   "border-red-200 bg-red-50 text-red-800",
	FlashInfo:    "border-slate-200 bg-slate-50 text-slate-700",
}

// FlashBanner renders f, or nothing when f is nil.
func FlashBanner(f *Flash) g.Node {
	if f == nil || f.Message == "" {
		return nil
	}
	role := "status"
	if f.Type == FlashError {
		role = "alert"
	}
	return Div(
		Class(Classes(flashBase, flashVariants[f.Type])),
		Role(role),
		g.Attr("data-flash", string(f.Type)),
		g.Text(f.Message),
	)
}
