package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"krushnagate.dev/portfolio/internal/content"
	"krushnagate.dev/portfolio/internal/motion"
)

// HeroSection animates in once on page load.
func HeroSection(p content.Profile) g.Node {
	return Section(
		ID(content.SectionHome),
		Class("pt-32 pb-20 px-4"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(animated(KeyHero, motion.HeroRise,
				Class("text-center"),
				H1(
					Class("text-4xl md:text-6xl font-bold mb-4"),
					g.Text(p.Greeting+" "),
					Span(Class("text-secondary"), g.Text(p.Name)),
				),
				H2(Class("text-2xl md:text-3xl text-tertiary mb-8"), g.Text(p.Headline)),
				P(Class("text-lg text-tertiary max-w-2xl mx-auto mb-8"), g.Text(p.Tagline)),
				A(Href("#"+content.SectionContact), Class("btn-primary"), g.Text(p.CTALabel)),
			)...),
		),
	)
}

func AboutSection(p content.Profile, t Translator) g.Node {
	return Section(
		ID(content.SectionAbout),
		Class("py-20 px-4"),
		Div(
			Class("max-w-7xl mx-auto"),
			H2(Class("section-title"), g.Text(t.get("about.title", "About Me"))),
			Div(
				Class("grid md:grid-cols-2 gap-8"),
				Div(animated(KeyAboutText, motion.SlideFromLeft,
					Class("bio text-tertiary"),
					g.Raw(p.BioHTML),
				)...),
				Div(animated(KeyAboutImage, motion.SlideFromRight,
					Class("flex items-center justify-center"),
					Div(
						Class("portrait w-64 h-64 bg-tertiary rounded-full"),
						Role("img"),
						Aria("label", t.get("about.portrait", "Portrait placeholder")),
					),
				)...),
			),
		),
	)
}

func SkillsSection(skills []string, t Translator) g.Node {
	cards := make([]g.Node, 0, len(skills))
	for i, s := range skills {
		cards = append(cards, Div(animated(skillKey(i), motion.ScaleIn,
			Class("skill-card bg-primary/50 p-6 rounded-lg text-center"),
			Span(Class("text-secondary text-xl font-medium"), g.Text(s)),
		)...))
	}
	return Section(
		ID(content.SectionSkills),
		Class("py-20 px-4 bg-primary/50"),
		Div(
			Class("max-w-7xl mx-auto"),
			H2(Class("section-title"), g.Text(t.get("skills.title", "Skills"))),
			Div(Class("grid grid-cols-2 md:grid-cols-4 gap-8"), g.Group(cards)),
		),
	)
}

func ProjectsSection(projects []content.Project, t Translator) g.Node {
	view := t.get("projects.view", "View Project")
	source := t.get("projects.source", "GitHub")
	return Section(
		ID(content.SectionProjects),
		Class("py-20 px-4"),
		Div(
			Class("max-w-7xl mx-auto"),
			H2(Class("section-title"), g.Text(t.get("projects.title", "Projects"))),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(projects, func(pr content.Project) g.Node {
					return projectCard(pr, view, source)
				}),
			),
		),
	)
}

func projectCard(pr content.Project, viewLabel, sourceLabel string) g.Node {
	return Div(animated(projectKey(pr.Number), motion.RiseIn,
		Class("project-card bg-primary/50 p-6 rounded-lg"),
		g.Attr("data-project", strconv.Itoa(pr.Number)),
		Div(Class("h-48 bg-tertiary rounded-lg mb-4")),
		H3(Class("text-xl font-bold mb-2"), g.Text(pr.Title)),
		P(Class("text-tertiary mb-4"), g.Text(pr.Description)),
		Div(
			Class("flex space-x-4"),
			A(Href(pr.ViewURL), Class("text-secondary hover:underline"), g.Text(viewLabel)),
			A(Href(pr.SourceURL), Class("text-secondary hover:underline"), g.Text(sourceLabel)),
		),
	)...)
}
