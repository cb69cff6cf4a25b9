package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"krushnagate.dev/portfolio/internal/anchors"
	"krushnagate.dev/portfolio/internal/components"
	"krushnagate.dev/portfolio/internal/nav"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every in-page link points at a rendered element",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, nil)
			if err != nil {
				return err
			}
			cfg.Server.Dev = false
			a, err := newApp(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			dangling, links, err := a.check(cfg.Site.Lang)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, target := range dangling {
				fmt.Fprintf(w, "dangling: #%s\n", target)
			}
			if len(dangling) > 0 {
				return fmt.Errorf("%d of %d in-page links have no target", len(dangling), links)
			}
			fmt.Fprintf(w, "ok: %d in-page links\n", links)
			return nil
		},
	}
}

// check renders the page with the menu open, so mobile links are included,
// and scans it for fragment links that match no id.
func (a *app) check(lang string) (dangling []string, links int, err error) {
	var buf bytes.Buffer
	if err := a.renderPage(&buf, lang, a.navView(lang, nav.MenuOpen), components.ContactView{}); err != nil {
		return nil, 0, err
	}
	rep, err := anchors.Scan(&buf)
	if err != nil {
		return nil, 0, err
	}
	return rep.Dangling(), len(rep.Links), nil
}
