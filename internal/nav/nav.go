package nav

import (
	"strings"

	"krushnagate.dev/portfolio/internal/content"
)

// MenuState is the mobile menu visibility flag. The zero value is Closed.
type MenuState uint8

const (
	MenuClosed MenuState = iota
	MenuOpen
)

// Icon glyph names for the toggle button.
const (
	IconOpenMenu  = "bars-3"
	IconCloseMenu = "x-mark"
)

// ParseMenuState reads the flag from a query value. Anything but "open" is Closed.
func ParseMenuState(v string) MenuState {
	if strings.EqualFold(strings.TrimSpace(v), "open") {
		return MenuOpen
	}
	return MenuClosed
}

// Toggle flips the flag.
func (s MenuState) Toggle() MenuState {
	if s == MenuOpen {
		return MenuClosed
	}
	return MenuOpen
}

// Select is the transition taken when a navigation link is clicked: the menu
// always collapses.
func (s MenuState) Select() MenuState { return MenuClosed }

func (s MenuState) IsOpen() bool { return s == MenuOpen }

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Icon is the glyph shown on the toggle button for the current state.
func (s MenuState) Icon() string {
	if s == MenuOpen {
		return IconCloseMenu
	}
	return IconOpenMenu
}

// RenderedItem is a view model for one navigation link.
type RenderedItem struct {
	Label  string
	Anchor string
	// Href is the desktop in-page link.
	Href string
	// MobileHref drops any menu query so a full navigation lands Closed.
	MobileHref string
	// Known is false when the anchor matches no rendered section; such links
	// stay inert instead of scrolling anywhere.
	Known bool
}

// View is everything the navigation bar needs to render.
type View struct {
	Brand string
	State MenuState
	Items []RenderedItem
	// ToggleHref is the no-script fallback for the toggle button.
	ToggleHref string
	// FragmentPath serves the swapped-in bar for htmx requests.
	FragmentPath string
}

// FragmentPath is the endpoint returning the navigation bar for a given state.
const FragmentPath = "/fragments/nav"

// Build renders navigation items for the given state.
func Build(brand string, items []content.NavItem, state MenuState) View {
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		anchor := strings.TrimPrefix(it.Anchor, "#")
		out = append(out, RenderedItem{
			Label:      it.Label,
			Anchor:     anchor,
			Href:       "#" + anchor,
			MobileHref: "/#" + anchor,
			Known:      content.IsSection(anchor),
		})
	}
	return View{
		Brand:        brand,
		State:        state,
		Items:        out,
		ToggleHref:   "/?menu=" + state.Toggle().String(),
		FragmentPath: FragmentPath,
	}
}

// ToggleFragment is the htmx URL that swaps in the bar after a toggle click.
func (v View) ToggleFragment() string {
	return v.FragmentPath + "?menu=" + v.State.Toggle().String()
}

// SelectFragment is the htmx URL that swaps in the bar after a link click.
func (v View) SelectFragment() string {
	return v.FragmentPath + "?menu=" + v.State.Select().String()
}

// WithoutFragments drops the htmx endpoint for pre-rendered pages. The toggle
// then links to toggleHref, a sibling page rendered in the other state.
func (v View) WithoutFragments(toggleHref string) View {
	v.FragmentPath = ""
	v.ToggleHref = toggleHref
	return v
}

// Interactive reports whether fragment swaps are available.
func (v View) Interactive() bool { return v.FragmentPath != "" }
