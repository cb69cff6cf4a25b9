package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"krushnagate.dev/portfolio/internal/format"
)

// SiteFooter prints the copyright line for the year of now.
func SiteFooter(now time.Time, owner string, t Translator) g.Node {
	if now.IsZero() {
		now = time.Now()
	}
	return Footer(
		Class("py-8 px-4 text-center text-tertiary"),
		P(g.Text(format.Copyright(now, owner, t.get("footer.rights", "All rights reserved.")))),
	)
}
