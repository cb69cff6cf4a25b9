package format

import (
	"fmt"
	"strings"
	"time"
)

// Year returns the calendar year of t in its own location.
func Year(t time.Time) int {
	return t.Year()
}

// Copyright renders the footer line, e.g. "© 2025 Jane Doe. All rights reserved."
// An empty owner drops the name but keeps the year.
func Copyright(t time.Time, owner, suffix string) string {
	owner = strings.TrimSpace(owner)
	suffix = strings.TrimSpace(suffix)
	line := fmt.Sprintf("© %d", Year(t))
	if owner != "" {
		line += " " + owner + "."
	}
	if suffix != "" {
		line += " " + suffix
	}
	return line
}

// Date formats time in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "ja":
		return t.Format("2006-01-02")
	default:
		return t.Format("Jan 2, 2006")
	}
}
