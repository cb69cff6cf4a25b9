package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"krushnagate.dev/portfolio/internal/nav"
)

// NavID is the element id htmx swaps when the menu flag changes.
const NavID = "site-nav"

// NavBar renders the fixed header. The mobile list exists only while the menu is open.
func NavBar(v nav.View, t Translator) g.Node {
	return Nav(
		ID(NavID),
		Class("site-nav fixed w-full bg-primary/80 backdrop-blur-sm z-50"),
		g.Attr("data-menu-state", v.State.String()),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex items-center justify-between h-16"),
				Div(
					Class("flex-shrink-0"),
					Span(Class("brand text-secondary text-xl font-bold"), g.Text(v.Brand)),
				),
				Div(
					Class("desktop-nav hidden md:block"),
					Div(
						Class("ml-10 flex items-center space-x-4"),
						g.Map(v.Items, desktopLink),
					),
				),
				Div(
					Class("md:hidden"),
					menuToggle(v, t),
				),
			),
		),
		g.If(v.State.IsOpen(), mobileMenu(v)),
	)
}

func desktopLink(it nav.RenderedItem) g.Node {
	return A(Href(it.Href), Class("nav-link"), g.Text(it.Label))
}

func menuToggle(v nav.View, t Translator) g.Node {
	nodes := []g.Node{
		Href(v.ToggleHref),
		Class("menu-toggle text-tertiary hover:text-secondary"),
		Role("button"),
		Aria("label", t.get("menu.toggle", "Toggle navigation menu")),
		Aria("expanded", boolAttr(v.State.IsOpen())),
		Aria("controls", "mobile-menu"),
	}
	nodes = append(nodes, swapAttrs(v, v.ToggleFragment(), "outerHTML")...)
	nodes = append(nodes, g.Attr("data-icon", v.State.Icon()), Icon(v.State.Icon()))
	return A(nodes...)
}

// swapAttrs wires an element to replace the bar with the fragment at url.
func swapAttrs(v nav.View, url, swap string) []g.Node {
	if !v.Interactive() {
		return nil
	}
	return []g.Node{
		g.Attr("hx-get", url),
		g.Attr("hx-target", "#"+NavID),
		g.Attr("hx-swap", swap),
	}
}

func mobileMenu(v nav.View) g.Node {
	return Div(
		ID("mobile-menu"),
		Class("md:hidden"),
		Div(
			Class("px-2 pt-2 pb-3 space-y-1"),
			g.Map(v.Items, func(it nav.RenderedItem) g.Node {
				return mobileLink(v, it)
			}),
		),
	)
}

// mobileLink navigates and collapses the menu in one click. Unknown anchors
// still collapse the menu but skip the scroll.
func mobileLink(v nav.View, it nav.RenderedItem) g.Node {
	swap := "outerHTML"
	if it.Known {
		swap += " show:#" + it.Anchor + ":top"
	}
	nodes := []g.Node{
		Href(it.MobileHref),
		Class("nav-link block px-3 py-2"),
		g.Attr("data-nav-anchor", it.Anchor),
	}
	nodes = append(nodes, swapAttrs(v, v.SelectFragment(), swap)...)
	nodes = append(nodes, g.Text(it.Label))
	return A(nodes...)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
