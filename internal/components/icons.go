package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"krushnagate.dev/portfolio/internal/nav"
)

// Heroicons 24/outline path data.
var iconPaths = map[string]string{
	nav.IconOpenMenu:  "M3.75 6.75h16.5M3.75 12h16.5m-16.5 5.25h16.5",
	nav.IconCloseMenu: "M6 18 18 6M6 6l12 12",
}

// Icon renders an outline glyph by name. Unknown names render nothing.
func Icon(name string) g.Node {
	d, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.El("svg",
		Class("h-6 w-6"),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("fill", "none"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke-width", "1.5"),
		g.Attr("stroke", "currentColor"),
		Aria("hidden", "true"),
		g.Attr("data-glyph", name),
		g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("d", d),
		),
	)
}
