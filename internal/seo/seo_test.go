package seo

import (
	"strings"
	"testing"
)

func TestPersonJSONLD(t *testing.T) {
	got := JSON(Person("Krushna Gate", "Backend Developer", "https://example.com/", []string{"Go"}))
	for _, want := range []string{`"@type":"Person"`, `"name":"Krushna Gate"`, `"knowsAbout":["Go"]`, `"url":"https://example.com/"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %s in %s", want, got)
		}
	}
	if strings.Contains(JSON(WebSite("Portfolio", "")), `"url"`) {
		t.Fatalf("empty url must be omitted")
	}
}

func TestBuildMeta(t *testing.T) {
	m := Build("Title", "Desc", " https://example.com/ ", "Portfolio")
	if m.Canonical != "https://example.com/" || m.OG.URL != m.Canonical {
		t.Fatalf("canonical not normalized: %+v", m)
	}
	if m.OG.Type != "profile" || m.OG.SiteName != "Portfolio" {
		t.Fatalf("unexpected og: %+v", m.OG)
	}
}
