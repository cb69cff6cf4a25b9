package handlers

import (
	"html/template"
	"strings"

	"krushnagate.dev/portfolio/internal/content"
	"krushnagate.dev/portfolio/internal/seo"
)

// PageData is the view model for the base layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	Analytics Analytics
	// Body is the pre-rendered page markup.
	Body template.HTML
}

// HomeInput carries what BuildHomeData needs besides the rendered body.
type HomeInput struct {
	Portfolio   content.Portfolio
	Lang        string
	Brand       string
	Description string
	SiteURL     string
	Analytics   Analytics
}

// BuildHomeData constructs the layout view model for the portfolio page.
func BuildHomeData(in HomeInput, body template.HTML) PageData {
	p := in.Portfolio.Profile
	title := p.Name
	if p.Headline != "" {
		title += " | " + p.Headline
	}
	canonical := strings.TrimSpace(in.SiteURL)
	meta := seo.Build(title, in.Description, canonical, in.Brand)
	meta.JSONLD = []string{
		seo.JSON(seo.Person(p.Name, p.Headline, canonical, in.Portfolio.Skills)),
		seo.JSON(seo.WebSite(in.Brand, canonical)),
	}
	return PageData{
		Title:     title,
		Lang:      in.Lang,
		SEO:       meta,
		Analytics: in.Analytics,
		Body:      body,
	}
}
