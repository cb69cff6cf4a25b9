package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"krushnagate.dev/portfolio/internal/anchors"
	"krushnagate.dev/portfolio/internal/components"
	"krushnagate.dev/portfolio/internal/logging"
	"krushnagate.dev/portfolio/internal/nav"
)

const (
	exportIndex = "index.html"
	exportMenu  = "menu.html"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var (
		out  string
		lang string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static copy of the page and its assets",
		Long: `export renders the page without the htmx endpoints. The mobile menu
toggle links between index.html (closed) and menu.html (open). The contact
form is rendered inert: it has no submit target and its button is disabled.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, nil)
			if err != nil {
				return err
			}
			cfg.Server.Dev = false
			logger, err := logging.New(cfg.Log.Level, true)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			if lang == "" {
				lang = cfg.Site.Lang
			}
			written, err := a.export(out, lang)
			if err != nil {
				return err
			}
			for _, f := range written {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&lang, "lang", "", "page language (default site.lang)")
	return cmd
}

// export writes both menu states and copies the assets tree into dir. It
// returns the files written.
func (a *app) export(dir, lang string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	pages := []struct {
		file   string
		state  nav.MenuState
		toggle string
	}{
		{exportIndex, nav.MenuClosed, "/" + exportMenu},
		{exportMenu, nav.MenuOpen, "/"},
	}
	var written []string
	for _, p := range pages {
		var buf bytes.Buffer
		nv := a.navView(lang, p.state).WithoutFragments(p.toggle)
		if err := a.renderPage(&buf, lang, nv, components.ContactView{Inert: true}); err != nil {
			return written, fmt.Errorf("render %s: %w", p.file, err)
		}
		if p.state == nav.MenuClosed {
			a.reportDangling(p.file, buf.Bytes())
		}
		path := filepath.Join(dir, p.file)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	copied, err := copyTree(filepath.Join(a.cfg.Paths.Public, "assets"), filepath.Join(dir, "assets"))
	written = append(written, copied...)
	return written, err
}

func (a *app) reportDangling(name string, page []byte) {
	rep, err := anchors.Scan(bytes.NewReader(page))
	if err != nil {
		a.log.Warn("scan exported page", zap.String("file", name), zap.Error(err))
		return
	}
	for _, target := range rep.Dangling() {
		a.log.Warn("link points at a missing anchor", zap.String("file", name), zap.String("anchor", target))
	}
}

func copyTree(src, dst string) ([]string, error) {
	var written []string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copy assets: %w", err)
	}
	return written, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
