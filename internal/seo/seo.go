package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is the head metadata for a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Build fills the common fields from a title, description and canonical URL.
func Build(title, description, canonical, siteName string) Meta {
	m := Meta{
		Title:       title,
		Description: description,
		Canonical:   strings.TrimSpace(canonical),
		Robots:      "index,follow",
	}
	m.OG = OpenGraph{
		Title:       title,
		Description: description,
		Type:        "profile",
		URL:         m.Canonical,
		SiteName:    siteName,
	}
	m.Twitter.Card = "summary"
	return m
}
