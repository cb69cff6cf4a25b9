package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNotFound is returned when the content override file does not exist.
	ErrNotFound = errors.New("content: not found")
	// ErrBioNotFound is returned when the override names a missing bio file.
	// The rest of the override still applies.
	ErrBioNotFound = errors.New("content: bio file not found")
	// ErrFixedContent rejects overrides of the navigation, the skills or the
	// set of project cards, which are constant.
	ErrFixedContent = errors.New("content: fixed content cannot be overridden")
)

// Section ids rendered on the page, in document order.
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// Sections lists every anchor the page renders.
var Sections = []string{SectionHome, SectionAbout, SectionSkills, SectionProjects, SectionContact}

// NavItem is a navigation entry pointing at a same-document anchor.
type NavItem struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
}

// Project is a placeholder project card. Number doubles as the iteration key.
type Project struct {
	Number      int    `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ViewURL     string `yaml:"view_url"`
	SourceURL   string `yaml:"source_url"`
}

// Profile carries the owner's identity and the hero/about copy.
type Profile struct {
	Name     string
	Greeting string
	Headline string
	Tagline  string
	CTALabel string
	// BioMarkdown is the raw about-me text; BioHTML is its sanitized rendering.
	BioMarkdown string
	BioHTML     string
}

// Portfolio is everything the page renders. It is immutable once built.
type Portfolio struct {
	Profile  Profile
	Nav      []NavItem
	Skills   []string
	Projects []Project
}

// DefaultNav is the fixed navigation list.
var DefaultNav = []NavItem{
	{Label: "Home", Anchor: SectionHome},
	{Label: "About", Anchor: SectionAbout},
	{Label: "Skills", Anchor: SectionSkills},
	{Label: "Projects", Anchor: SectionProjects},
	{Label: "Contact", Anchor: SectionContact},
}

// DefaultSkills is the fixed skill list.
var DefaultSkills = []string{
	"React",
	"JavaScript",
	"Node.js",
	"Express.js",
	"AWS",
	"Socket.io",
	"Github",
	"Mongodb",
}

const (
	projectDescription = "A brief description of the project and its key features."
	projectCount       = 3
)

// DefaultProjects returns the placeholder cards numbered 1 through 3.
func DefaultProjects() []Project {
	out := make([]Project, 0, projectCount)
	for n := 1; n <= projectCount; n++ {
		out = append(out, Project{
			Number:      n,
			Title:       fmt.Sprintf("Project %d", n),
			Description: projectDescription,
			ViewURL:     "#",
			SourceURL:   "#",
		})
	}
	return out
}

const defaultBio = `I am a passionate Software Engineer with a postgraduate degree, specializing in
creating innovative solutions and building robust applications.

My name is Krushna Sakharam Gate. I am from Pune. I have completed my post-graduation
(MCS) in 2023 from Pratibha College of Commerce and Computer Studies, affiliated with
Savitribai Phule Pune University, with a score of 70%. I have completed a 6-month
full-stack MERN development internship at Seed Infotech. I have hands-on experience with
technologies like Node.js, React.js, MongoDB, Express.js, Javascript and AWS (for file
uploading). Currently, I am working as a Backend Developer in software development and
also leading the team as a Team Lead (TL).
`

// DefaultProfile returns the built-in owner profile with its bio rendered.
func DefaultProfile() Profile {
	p := Profile{
		Name:        "Krushna Gate",
		Greeting:    "Hi, I'm",
		Headline:    "Software Engineer (Backend Developer)",
		Tagline:     "I build exceptional digital experiences with modern technologies.",
		CTALabel:    "Get In Touch",
		BioMarkdown: defaultBio,
	}
	p.BioHTML = RenderMarkdown(p.BioMarkdown)
	return p
}

// Default returns the built-in portfolio. Every call returns fresh slices.
func Default() Portfolio {
	return Portfolio{
		Profile:  DefaultProfile(),
		Nav:      slices.Clone(DefaultNav),
		Skills:   slices.Clone(DefaultSkills),
		Projects: DefaultProjects(),
	}
}

// Clone returns a deep copy so callers cannot mutate shared content.
func (p Portfolio) Clone() Portfolio {
	cp := p
	cp.Nav = slices.Clone(p.Nav)
	cp.Skills = slices.Clone(p.Skills)
	cp.Projects = slices.Clone(p.Projects)
	return cp
}

// IsSection reports whether anchor names a rendered section.
func IsSection(anchor string) bool {
	return slices.Contains(Sections, strings.TrimPrefix(anchor, "#"))
}

// Validate lists navigation items whose anchor does not match a rendered section.
// A dangling anchor is not fatal; the link simply goes nowhere.
func (p Portfolio) Validate() []NavItem {
	var bad []NavItem
	for _, it := range p.Nav {
		if !IsSection(it.Anchor) {
			bad = append(bad, it)
		}
	}
	return bad
}
