// Package motion describes entrance animations and decides when they fire.
//
// A Spec says how an element moves from its initial frame to its resting frame.
// A Tracker remembers which elements already played so each animation runs at
// most once per page view, no matter how often the element re-enters the viewport.
package motion

import (
	"fmt"
	"strconv"
	"time"
)

// Trigger selects when an animation starts.
type Trigger uint8

const (
	// OnMount plays once when the page is first shown, regardless of scroll.
	OnMount Trigger = iota
	// OnFirstView plays once, the first time the element intersects the viewport.
	OnFirstView
)

func (t Trigger) String() string {
	if t == OnMount {
		return "mount"
	}
	return "view"
}

// Frame is a visual state. Offsets are in CSS pixels.
type Frame struct {
	Opacity float64
	X       float64
	Y       float64
	Scale   float64
}

// Rest is the resting frame every entrance ends at.
var Rest = Frame{Opacity: 1, Scale: 1}

// Spec is one named entrance animation.
type Spec struct {
	Name     string
	From     Frame
	To       Frame
	Duration time.Duration
	Trigger  Trigger
}

var (
	HeroRise = Spec{
		Name:     "hero-rise",
		From:     Frame{Opacity: 0, Y: 20, Scale: 1},
		To:       Rest,
		Duration: 500 * time.Millisecond,
		Trigger:  OnMount,
	}
	SlideFromLeft = Spec{
		Name:     "slide-left",
		From:     Frame{Opacity: 0, X: -20, Scale: 1},
		To:       Rest,
		Duration: 500 * time.Millisecond,
		Trigger:  OnFirstView,
	}
	SlideFromRight = Spec{
		Name:     "slide-right",
		From:     Frame{Opacity: 0, X: 20, Scale: 1},
		To:       Rest,
		Duration: 500 * time.Millisecond,
		Trigger:  OnFirstView,
	}
	ScaleIn = Spec{
		Name:     "scale-in",
		From:     Frame{Opacity: 0, Scale: 0.8},
		To:       Rest,
		Duration: 300 * time.Millisecond,
		Trigger:  OnFirstView,
	}
	RiseIn = Spec{
		Name:     "rise-in",
		From:     Frame{Opacity: 0, Y: 20, Scale: 1},
		To:       Rest,
		Duration: 500 * time.Millisecond,
		Trigger:  OnFirstView,
	}
)

// Attr is one HTML attribute.
type Attr struct {
	Key string
	Val string
}

// Attrs returns the data attributes and inline CSS variables the client script
// and stylesheet read. The element starts at From and transitions to To.
func (s Spec) Attrs() []Attr {
	return []Attr{
		{Key: "data-motion", Val: s.Name},
		{Key: "data-motion-trigger", Val: s.Trigger.String()},
		{Key: "style", Val: s.Style()},
	}
}

// Style renders the animation parameters as CSS custom properties.
func (s Spec) Style() string {
	return fmt.Sprintf(
		"--motion-from-opacity:%s;--motion-from-x:%spx;--motion-from-y:%spx;--motion-from-scale:%s;--motion-duration:%dms",
		num(s.From.Opacity), num(s.From.X), num(s.From.Y), num(s.From.Scale), s.Duration.Milliseconds(),
	)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Target binds a spec to a page element key.
type Target struct {
	Key  string
	Spec Spec
}
