package motion

// Rect is an element's vertical extent in page coordinates.
type Rect struct {
	Top    float64
	Bottom float64
}

// Viewport is the visible slice of the page.
type Viewport struct {
	Top    float64
	Height float64
}

// Bottom returns the page offset of the viewport's lower edge.
func (v Viewport) Bottom() float64 { return v.Top + v.Height }

// Intersects reports whether any part of r is visible. Touching edges do not count.
func (v Viewport) Intersects(r Rect) bool {
	if r.Bottom <= r.Top || v.Height <= 0 {
		return false
	}
	return r.Top < v.Bottom() && r.Bottom > v.Top
}

// Element is a target placed on the page.
type Element struct {
	Target
	Box Rect
}

// Tracker records which targets already animated. It is owned by a single page
// view and is not safe for concurrent use.
type Tracker struct {
	played map[string]struct{}
	order  []string
}

func NewTracker() *Tracker {
	return &Tracker{played: map[string]struct{}{}}
}

// Played reports whether key has already animated.
func (t *Tracker) Played(key string) bool {
	_, ok := t.played[key]
	return ok
}

// History lists every key that animated, in firing order.
func (t *Tracker) History() []string {
	return append([]string(nil), t.order...)
}

// Mount fires every OnMount target that has not played yet and returns their keys.
func (t *Tracker) Mount(targets []Target) []string {
	var fired []string
	for _, tg := range targets {
		if tg.Spec.Trigger != OnMount || t.Played(tg.Key) {
			continue
		}
		t.mark(tg.Key)
		fired = append(fired, tg.Key)
	}
	return fired
}

// Observe fires OnFirstView elements that intersect v for the first time and
// returns their keys. Elements already played are ignored.
func (t *Tracker) Observe(v Viewport, elements []Element) []string {
	var fired []string
	for _, el := range elements {
		if el.Spec.Trigger != OnFirstView || t.Played(el.Key) {
			continue
		}
		if !v.Intersects(el.Box) {
			continue
		}
		t.mark(el.Key)
		fired = append(fired, el.Key)
	}
	return fired
}

func (t *Tracker) mark(key string) {
	t.played[key] = struct{}{}
	t.order = append(t.order, key)
}
