package anchors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanFindsDanglingTargets(t *testing.T) {
	t.Parallel()

	doc := `<!doctype html><html><body>
<nav><a href="#home">Home</a><a href="/#about">About</a><a href="#blog">Blog</a><a href="/#blog">Blog</a></nav>
<section id="home"></section><section id="about"></section>
<a href="#">placeholder</a><a href="https://example.com/#x">external</a><a href="/other#y">other page</a>
</body></html>`
	rep, err := Scan(strings.NewReader(doc))
	require.NoError(t, err)
	require.Contains(t, rep.IDs, "home")
	require.Len(t, rep.Links, 4)
	require.Equal(t, []string{"blog"}, rep.Dangling())
}

func TestScanCleanDocument(t *testing.T) {
	t.Parallel()

	rep, err := Scan(strings.NewReader(`<a href="#top">top</a><div id="top"></div>`))
	require.NoError(t, err)
	require.Empty(t, rep.Dangling())
}
