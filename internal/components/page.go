// Package components renders the portfolio page as gomponents nodes.
package components

import (
	"fmt"
	"io"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"krushnagate.dev/portfolio/internal/content"
	"krushnagate.dev/portfolio/internal/motion"
	"krushnagate.dev/portfolio/internal/nav"
)

// Translator looks up page chrome copy. def is returned when key is unknown.
type Translator func(key, def string) string

func (t Translator) get(key, def string) string {
	if t == nil {
		return def
	}
	return t(key, def)
}

// View is the full input for one page render.
type View struct {
	Portfolio content.Portfolio
	Nav       nav.View
	Contact   ContactView
	// Now is the render clock; the footer year is derived from it.
	Now time.Time
	T   Translator
}

// Page composes every section in document order.
func Page(v View) g.Node {
	return Div(
		Class("min-h-screen"),
		NavBar(v.Nav, v.T),
		Main(
			HeroSection(v.Portfolio.Profile),
			AboutSection(v.Portfolio.Profile, v.T),
			SkillsSection(v.Portfolio.Skills, v.T),
			ProjectsSection(v.Portfolio.Projects, v.T),
			ContactSection(v.Contact, v.T),
		),
		SiteFooter(v.Now, v.Portfolio.Profile.Name, v.T),
	)
}

// Render writes the page body to w.
func Render(w io.Writer, v View) error {
	return Page(v).Render(w)
}

// Motion keys for page elements.
const (
	KeyHero       = "hero"
	KeyAboutText  = "about-text"
	KeyAboutImage = "about-visual"
)

func skillKey(i int) string {
	return fmt.Sprintf("skill-%d", i+1)
}

func projectKey(n int) string {
	return fmt.Sprintf("project-%d", n)
}

// Targets lists every animated element of the page in document order.
func Targets(p content.Portfolio) []motion.Target {
	out := []motion.Target{
		{Key: KeyHero, Spec: motion.HeroRise},
		{Key: KeyAboutText, Spec: motion.SlideFromLeft},
		{Key: KeyAboutImage, Spec: motion.SlideFromRight},
	}
	for i := range p.Skills {
		out = append(out, motion.Target{Key: skillKey(i), Spec: motion.ScaleIn})
	}
	for _, pr := range p.Projects {
		out = append(out, motion.Target{Key: projectKey(pr.Number), Spec: motion.RiseIn})
	}
	return out
}

// animated prepends the motion attributes for key to an element's children.
func animated(key string, spec motion.Spec, children ...g.Node) []g.Node {
	nodes := []g.Node{g.Attr("data-motion-key", key)}
	for _, a := range spec.Attrs() {
		nodes = append(nodes, g.Attr(a.Key, a.Val))
	}
	return append(nodes, children...)
}
