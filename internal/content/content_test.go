package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultNavOrderAndAnchors(t *testing.T) {
	t.Parallel()

	p := Default()
	require.Len(t, p.Nav, 5)
	want := []NavItem{
		{"Home", "home"},
		{"About", "about"},
		{"Skills", "skills"},
		{"Projects", "projects"},
		{"Contact", "contact"},
	}
	require.Equal(t, want, p.Nav)
	require.Empty(t, p.Validate(), "default nav must only target rendered sections")
}

func TestDefaultSkillsFixedList(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		"React", "JavaScript", "Node.js", "Express.js",
		"AWS", "Socket.io", "Github", "Mongodb",
	}, Default().Skills)
}

func TestDefaultProjectsNumberedOneToThree(t *testing.T) {
	t.Parallel()

	projects := DefaultProjects()
	require.Len(t, projects, 3)
	for i, pr := range projects {
		require.Equal(t, i+1, pr.Number)
		require.Equal(t, "Project "+string(rune('1'+i)), pr.Title)
		require.Equal(t, "#", pr.ViewURL)
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	a.Nav[0].Label = "Changed"
	a.Skills[0] = "Changed"
	b := Default()
	require.Equal(t, "Home", b.Nav[0].Label)
	require.Equal(t, "React", b.Skills[0])
	require.Equal(t, "Home", DefaultNav[0].Label)
}

func TestValidateReportsDanglingAnchor(t *testing.T) {
	t.Parallel()

	p := Default()
	p.Nav = append(p.Nav, NavItem{Label: "Blog", Anchor: "blog"})
	bad := p.Validate()
	require.Len(t, bad, 1)
	require.Equal(t, "blog", bad[0].Anchor)
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	t.Parallel()

	out := RenderMarkdown("Hello **world** <script>alert(1)</script> [x](javascript:alert(1))")
	require.Contains(t, out, "<strong>world</strong>")
	require.NotContains(t, out, "<script>")
	require.NotContains(t, out, "javascript:")
	require.Empty(t, RenderMarkdown("   "))
}

func TestDefaultProfileBioRendered(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	require.Equal(t, "Krushna Gate", p.Name)
	require.True(t, strings.HasPrefix(p.BioHTML, "<p>"), "bio should render paragraphs, got %q", p.BioHTML)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	p, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default().Skills, p.Skills)
}

func TestLoadMissingFileWrapsNotFound(t *testing.T) {
	t.Parallel()

	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
	require.Len(t, p.Nav, 5, "defaults are still returned")
}

func TestLoadMergesOverridesAndBioFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bio := "---\nheadline: Platform Engineer\n---\nI like *Go*.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.md"), []byte(bio), 0o644))
	cfg := `
profile:
  name: "  Jane Doe "
  bio_file: about.md
projects:
  - number: 1
    title: Relay
    view_url: https://example.com/relay
  - number: 3
    description: " "
`
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", p.Profile.Name)
	require.Equal(t, "Platform Engineer", p.Profile.Headline)
	require.Contains(t, p.Profile.BioHTML, "<em>Go</em>")
	require.Len(t, p.Projects, 3)
	require.Equal(t, "Relay", p.Projects[0].Title)
	require.Equal(t, "https://example.com/relay", p.Projects[0].ViewURL)
	require.Equal(t, "#", p.Projects[0].SourceURL)
	require.Equal(t, "Project 2", p.Projects[1].Title)
	require.Equal(t, Default().Projects[2], p.Projects[2])
	require.Equal(t, Default().Nav, p.Nav)
	require.Equal(t, Default().Skills, p.Skills)
	require.Equal(t, "Project 1", Default().Projects[0].Title, "defaults are not mutated")
}

func TestLoadMissingBioKeepsOtherOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	body := "profile:\n  name: Jane Doe\n  bio_file: gone.md\nprojects:\n  - {number: 2, title: Relay}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	p, err := Load(path)
	require.ErrorIs(t, err, ErrBioNotFound)
	require.False(t, errors.Is(err, ErrNotFound))
	require.Equal(t, "Jane Doe", p.Profile.Name)
	require.Equal(t, "Relay", p.Projects[1].Title)
	require.Equal(t, DefaultProfile().BioHTML, p.Profile.BioHTML)
}

func TestLoadRejectsFixedContent(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"nav":           "nav:\n  - {label: Blog, anchor: blog}\n",
		"skills":        "skills: [Go]\n",
		"extra project": "projects:\n  - {number: 4, title: X}\n",
		"unnumbered":    "projects:\n  - {title: X}\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "portfolio.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		p, err := Load(path)
		require.ErrorIs(t, err, ErrFixedContent, name)
		require.Equal(t, Default(), p, name)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  nmae: typo\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrFixedContent))
}
