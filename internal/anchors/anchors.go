// Package anchors checks that in-page links point at elements that exist.
package anchors

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Report is the result of scanning one document.
type Report struct {
	IDs   map[string]struct{}
	Links []Link
}

// Link is an element referencing a same-document fragment.
type Link struct {
	Tag    string
	Target string
}

// Scan parses an HTML document and collects ids and fragment links. Links with
// an empty fragment ("#") are placeholders and are skipped.
func Scan(r io.Reader) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("anchors: parse: %w", err)
	}
	rep := Report{IDs: map[string]struct{}{}}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				switch a.Key {
				case "id":
					if a.Val != "" {
						rep.IDs[a.Val] = struct{}{}
					}
				case "href":
					if target, ok := fragment(a.Val); ok {
						rep.Links = append(rep.Links, Link{Tag: n.Data, Target: target})
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rep, nil
}

// fragment extracts the target of "#x" and "/#x" links.
func fragment(href string) (string, bool) {
	href = strings.TrimSpace(href)
	i := strings.IndexByte(href, '#')
	if i < 0 {
		return "", false
	}
	if prefix := href[:i]; prefix != "" && prefix != "/" {
		return "", false
	}
	target := href[i+1:]
	if target == "" {
		return "", false
	}
	return target, true
}

// Dangling returns the sorted, de-duplicated targets that match no id.
func (r Report) Dangling() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range r.Links {
		if _, ok := r.IDs[l.Target]; ok {
			continue
		}
		if _, dup := seen[l.Target]; dup {
			continue
		}
		seen[l.Target] = struct{}{}
		out = append(out, l.Target)
	}
	sort.Strings(out)
	return out
}
