package main

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"krushnagate.dev/portfolio/internal/config"
	"krushnagate.dev/portfolio/internal/contact"
	"krushnagate.dev/portfolio/internal/content"
	"krushnagate.dev/portfolio/internal/i18n"
)

// app holds everything the handlers share for the life of the process.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	bundle    *i18n.Bundle
	portfolio content.Portfolio
	outbox    contact.Outbox
	views     *views
	now       func() time.Time
}

func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle, err := i18n.Load(cfg.Paths.Locales, cfg.Site.Lang, nil)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}

	p, err := content.Load(cfg.Content.File)
	switch {
	case errors.Is(err, content.ErrNotFound):
		logger.Info("content file not found; using built-in content", zap.String("file", cfg.Content.File))
	case errors.Is(err, content.ErrBioNotFound):
		logger.Warn("bio file not found; keeping the built-in bio", zap.Error(err))
	case err != nil:
		return nil, fmt.Errorf("load content: %w", err)
	}
	for _, it := range p.Validate() {
		logger.Warn("navigation item has no matching section",
			zap.String("label", it.Label), zap.String("anchor", it.Anchor))
	}

	outbox, err := newOutbox(cfg)
	if err != nil {
		return nil, err
	}

	v := newViews(cfg.Paths.Templates, cfg.Server.Dev)
	if !cfg.Server.Dev {
		// parse once in production so broken templates fail at startup
		if err := v.load(); err != nil {
			return nil, fmt.Errorf("parse templates: %w", err)
		}
	}

	return &app{
		cfg:       cfg,
		log:       logger,
		bundle:    bundle,
		portfolio: p,
		outbox:    outbox,
		views:     v,
		now:       time.Now,
	}, nil
}

func newOutbox(cfg *config.Config) (contact.Outbox, error) {
	if cfg.IsMemoryOutbox() {
		return contact.NewMemoryOutbox(), nil
	}
	fo, err := contact.NewFileOutbox(cfg.Contact.Outbox)
	if err != nil {
		return nil, fmt.Errorf("open contact outbox: %w", err)
	}
	return fo, nil
}
