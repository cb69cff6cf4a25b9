package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// views owns the layout templates. In dev mode they are reparsed on every
// render so edits show up without a restart.
type views struct {
	dir string
	dev bool

	mu    sync.RWMutex
	cache *template.Template
}

func newViews(dir string, dev bool) *views {
	return &views{dir: dir, dev: dev}
}

func (v *views) load() error {
	t, err := parseTemplates(v.dir)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.cache = t
	v.mu.Unlock()
	return nil
}

func (v *views) templates() (*template.Template, error) {
	if v.dev {
		return parseTemplates(v.dir)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.cache == nil {
		return nil, fmt.Errorf("templates not initialized")
	}
	return v.cache, nil
}

// render executes the named template into w. Output is buffered so a failed
// execution never leaves a half-written page behind.
func (v *views) render(w io.Writer, name string, data any) error {
	t, err := v.templates()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func parseTemplates(dir string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		// JSON-LD payloads come from encoding/json, which escapes <, > and &
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
	// ParseGlob has no **, so walk the tree
	var files []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}
