package motion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersects(t *testing.T) {
	t.Parallel()

	v := Viewport{Top: 100, Height: 500}
	cases := []struct {
		name string
		box  Rect
		want bool
	}{
		{"inside", Rect{200, 300}, true},
		{"overlaps top", Rect{50, 150}, true},
		{"overlaps bottom", Rect{550, 900}, true},
		{"covers", Rect{0, 1000}, true},
		{"above", Rect{0, 100}, false},
		{"below", Rect{600, 700}, false},
		{"empty box", Rect{300, 300}, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, v.Intersects(tc.box), tc.name)
	}
	require.False(t, Viewport{Top: 0, Height: 0}.Intersects(Rect{0, 10}))
}

func TestMountFiresOnce(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	targets := []Target{{Key: "hero", Spec: HeroRise}, {Key: "skill-React", Spec: ScaleIn}}
	require.Equal(t, []string{"hero"}, tr.Mount(targets))
	require.Empty(t, tr.Mount(targets))
	require.True(t, tr.Played("hero"))
	require.False(t, tr.Played("skill-React"))
}

func TestObserveFiresOnFirstIntersectionOnly(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	els := []Element{
		{Target: Target{Key: "hero", Spec: HeroRise}, Box: Rect{0, 400}},
		{Target: Target{Key: "a", Spec: RiseIn}, Box: Rect{900, 1100}},
		{Target: Target{Key: "b", Spec: RiseIn}, Box: Rect{1500, 1700}},
	}

	require.Empty(t, tr.Observe(Viewport{Top: 0, Height: 800}, els), "mount targets are not scroll triggered")
	require.Equal(t, []string{"a"}, tr.Observe(Viewport{Top: 600, Height: 800}, els))
	require.Equal(t, []string{"b"}, tr.Observe(Viewport{Top: 1000, Height: 800}, els))
	require.Empty(t, tr.Observe(Viewport{Top: 0, Height: 800}, els))
	require.Empty(t, tr.Observe(Viewport{Top: 800, Height: 1200}, els))
	require.Equal(t, []string{"a", "b"}, tr.History())
}

func TestSpecStyle(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"--motion-from-opacity:0;--motion-from-x:0px;--motion-from-y:0px;--motion-from-scale:0.8;--motion-duration:300ms",
		ScaleIn.Style())
	attrs := SlideFromLeft.Attrs()
	require.Len(t, attrs, 3)
	require.Equal(t, Attr{Key: "data-motion", Val: "slide-left"}, attrs[0])
	require.Equal(t, Attr{Key: "data-motion-trigger", Val: "view"}, attrs[1])
	require.Equal(t, "mount", HeroRise.Attrs()[1].Val)
	require.Contains(t, attrs[2].Val, "--motion-from-x:-20px")
}
