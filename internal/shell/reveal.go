package shell

import "sync"

// Reveal observer settings rendered into the page.
const (
	RevealThreshold  = 0.1
	RevealRootMargin = "0px 0px -50px 0px"
	RevealClass      = "animate-on-scroll"
	RevealedClass    = "animated"
)

// RevealTracker records which observed elements have been revealed. The first
// intersection reveals an element for good and stops observing it.
type RevealTracker struct {
	mu       sync.Mutex
	observed map[string]bool
	revealed map[string]bool
	onReveal func(id string)
}

// NewRevealTracker creates a tracker. onReveal, if set, runs once per element.
func NewRevealTracker(onReveal func(id string)) *RevealTracker {
	return &RevealTracker{
		observed: make(map[string]bool),
		revealed: make(map[string]bool),
		onReveal: onReveal,
	}
}

// Observe starts watching elements. Already revealed elements are not
// observed again.
func (r *RevealTracker) Observe(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		if !r.revealed[id] {
			r.observed[id] = true
		}
	}
}

// Intersect delivers a viewport notification. It reports whether this call
// revealed the element.
func (r *RevealTracker) Intersect(id string, intersecting bool) bool {
	r.mu.Lock()
	if !intersecting || !r.observed[id] {
		r.mu.Unlock()
		return false
	}
	delete(r.observed, id)
	r.revealed[id] = true
	r.mu.Unlock()

	if r.onReveal != nil {
		r.onReveal(id)
	}
	return true
}

// Revealed reports whether the element has been revealed.
func (r *RevealTracker) Revealed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed[id]
}

// Observing reports whether the element is still being watched.
func (r *RevealTracker) Observing(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.observed[id]
}
