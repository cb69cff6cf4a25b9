package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type fileProfile struct {
	Name     string `yaml:"name"`
	Greeting string `yaml:"greeting"`
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
	CTALabel string `yaml:"cta_label"`
	Bio      string `yaml:"bio"`
	BioFile  string `yaml:"bio_file"`
}

// fileProject overrides the copy of one card, addressed by its number.
type fileProject struct {
	Number      int    `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ViewURL     string `yaml:"view_url"`
	SourceURL   string `yaml:"source_url"`
}

type fileContent struct {
	Profile  fileProfile   `yaml:"profile"`
	Projects []fileProject `yaml:"projects"`
}

// bioFrontMatter lets a bio markdown file carry profile overrides.
type bioFrontMatter struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
}

// Load reads a portfolio override file and merges it over the defaults.
// Only the profile and the copy of the three project cards can change; a
// file that touches the navigation or the skills is rejected with
// ErrFixedContent.
//
// An empty path yields the defaults. A missing file yields the defaults and
// an error wrapping ErrNotFound. A missing bio file yields the merged
// content and an error wrapping ErrBioNotFound.
func Load(path string) (Portfolio, error) {
	p := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, fmt.Errorf("content file %s: %w", path, ErrNotFound)
		}
		return p, fmt.Errorf("read content file %s: %w", path, err)
	}
	fc, err := decodeContent(raw)
	if err != nil {
		return p, fmt.Errorf("parse content file %s: %w", path, err)
	}
	projects, err := mergeProjects(p.Projects, fc.Projects)
	if err != nil {
		return p, fmt.Errorf("content file %s: %w", path, err)
	}

	var bioErr error
	if fc.Profile.BioFile != "" {
		bioPath := fc.Profile.BioFile
		if !filepath.IsAbs(bioPath) {
			bioPath = filepath.Join(filepath.Dir(path), bioPath)
		}
		fm, body, err := readBio(bioPath)
		switch {
		case errors.Is(err, ErrBioNotFound):
			bioErr = err
		case err != nil:
			return p, err
		default:
			fc.Profile.Bio = body
			fc.Profile.Name = firstNonEmpty(fc.Profile.Name, fm.Name)
			fc.Profile.Headline = firstNonEmpty(fc.Profile.Headline, fm.Headline)
			fc.Profile.Tagline = firstNonEmpty(fc.Profile.Tagline, fm.Tagline)
		}
	}

	p.Profile = mergeProfile(p.Profile, fc.Profile)
	p.Projects = projects
	return p, bioErr
}

// decodeContent rejects the fixed lists by name, then decodes strictly so a
// misspelt key is an error rather than a silent no-op.
func decodeContent(raw []byte) (fileContent, error) {
	var fc fileContent
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &keys); err != nil {
		return fc, err
	}
	for _, fixed := range []string{"nav", "skills"} {
		if _, ok := keys[fixed]; ok {
			return fc, fmt.Errorf("%w: %s", ErrFixedContent, fixed)
		}
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, err
	}
	return fc, nil
}

func readBio(path string) (bioFrontMatter, string, error) {
	var fm bioFrontMatter
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fm, "", fmt.Errorf("bio file %s: %w", path, ErrBioNotFound)
		}
		return fm, "", fmt.Errorf("read bio file %s: %w", path, err)
	}
	front, body := splitFrontMatter(string(data))
	if strings.TrimSpace(front) != "" {
		if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
			return fm, "", fmt.Errorf("parse bio front matter %s: %w", path, err)
		}
	}
	return fm, body, nil
}

func mergeProfile(base Profile, over fileProfile) Profile {
	out := base
	out.Name = firstNonEmpty(strings.TrimSpace(over.Name), base.Name)
	out.Greeting = firstNonEmpty(strings.TrimSpace(over.Greeting), base.Greeting)
	out.Headline = firstNonEmpty(strings.TrimSpace(over.Headline), base.Headline)
	out.Tagline = firstNonEmpty(strings.TrimSpace(over.Tagline), base.Tagline)
	out.CTALabel = firstNonEmpty(strings.TrimSpace(over.CTALabel), base.CTALabel)
	if strings.TrimSpace(over.Bio) != "" {
		out.BioMarkdown = over.Bio
		out.BioHTML = RenderMarkdown(over.Bio)
	}
	return out
}

// mergeProjects applies per-card copy onto the defaults. Cards are addressed
// by number; the set of cards itself never changes.
func mergeProjects(base []Project, over []fileProject) ([]Project, error) {
	out := slices.Clone(base)
	for _, fp := range over {
		i := slices.IndexFunc(out, func(pr Project) bool { return pr.Number == fp.Number })
		if i < 0 {
			return base, fmt.Errorf("%w: project number %d (want 1-%d)", ErrFixedContent, fp.Number, projectCount)
		}
		pr := &out[i]
		pr.Title = firstNonEmpty(strings.TrimSpace(fp.Title), pr.Title)
		pr.Description = firstNonEmpty(strings.TrimSpace(fp.Description), pr.Description)
		pr.ViewURL = firstNonEmpty(strings.TrimSpace(fp.ViewURL), pr.ViewURL)
		pr.SourceURL = firstNonEmpty(strings.TrimSpace(fp.SourceURL), pr.SourceURL)
	}
	return out, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
