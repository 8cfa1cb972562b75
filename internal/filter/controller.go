package filter

import (
	"slices"
	"sync"
	"time"

	"sweetbox/internal/model"
)

// DebounceWindow is the quiet period after the last text or price edit before
// the filter runs.
const DebounceWindow = 300 * time.Millisecond

// Timer is the part of *time.Timer the controller uses.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func()) Timer

// Controller drives the filter panel: text and price edits are debounced,
// checkbox toggles and resets apply immediately. Every application hands the
// filtered products to the result callback.
type Controller struct {
	mu       sync.Mutex
	products []model.Product
	criteria model.FilterCriteria
	pending  Timer
	after    AfterFunc
	window   time.Duration
	onResult func([]model.Product)
}

// Option configures a Controller.
type Option func(*Controller)

// WithAfterFunc replaces the scheduler, mainly for tests.
func WithAfterFunc(after AfterFunc) Option {
	return func(c *Controller) { c.after = after }
}

// WithWindow overrides DebounceWindow.
func WithWindow(d time.Duration) Option {
	return func(c *Controller) { c.window = d }
}

// NewController creates a controller over products. onResult runs with the
// filtered list every time the filter is applied.
func NewController(products []model.Product, onResult func([]model.Product), opts ...Option) *Controller {
	c := &Controller{
		products: products,
		criteria: model.DefaultFilterCriteria(),
		after: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		window:   DebounceWindow,
		onResult: onResult,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Criteria returns the current criteria.
func (c *Controller) Criteria() model.FilterCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()

	cr := c.criteria
	cr.Flags = slices.Clone(cr.Flags)
	return cr
}

// SearchInput records a search-box edit and reschedules the filter.
func (c *Controller) SearchInput(text string) {
	c.mu.Lock()
	c.criteria.SearchText = text
	c.scheduleLocked()
	c.mu.Unlock()
}

// PriceMinInput records a lower-bound edit. Empty or invalid input means 0.
func (c *Controller) PriceMinInput(raw string) {
	c.mu.Lock()
	c.criteria.PriceMin = 0
	if v, ok := parsePrice(raw); ok {
		c.criteria.PriceMin = v
	}
	c.scheduleLocked()
	c.mu.Unlock()
}

// PriceMaxInput records an upper-bound edit. Empty, zero or invalid input
// removes the bound.
func (c *Controller) PriceMaxInput(raw string) {
	c.mu.Lock()
	c.criteria.PriceMax = model.DefaultFilterCriteria().PriceMax
	if v, ok := parsePrice(raw); ok && v != 0 {
		c.criteria.PriceMax = v
	}
	c.scheduleLocked()
	c.mu.Unlock()
}

// ToggleFlag switches a dietary flag and applies the filter at once.
func (c *Controller) ToggleFlag(flag string, on bool) {
	c.mu.Lock()
	c.criteria.Flags = slices.DeleteFunc(c.criteria.Flags, func(f string) bool { return f == flag })
	if on {
		c.criteria.Flags = append(c.criteria.Flags, flag)
	}
	c.cancelLocked()
	result := Apply(c.products, c.criteria)
	c.mu.Unlock()

	c.onResult(result)
}

// Reset clears every criterion and applies the identity filter at once.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.criteria = model.DefaultFilterCriteria()
	c.cancelLocked()
	result := Apply(c.products, c.criteria)
	c.mu.Unlock()

	c.onResult(result)
}

// Flush applies a pending edit now instead of waiting for the window. It
// reports whether an edit was pending.
func (c *Controller) Flush() bool {
	c.mu.Lock()
	if c.pending == nil {
		c.mu.Unlock()
		return false
	}
	c.cancelLocked()
	result := Apply(c.products, c.criteria)
	c.mu.Unlock()

	c.onResult(result)
	return true
}

// Stop cancels a pending application.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.cancelLocked()
	c.mu.Unlock()
}

func (c *Controller) scheduleLocked() {
	c.cancelLocked()

	var t Timer
	t = c.after(c.window, func() {
		c.mu.Lock()
		if c.pending != t {
			// Superseded by a later edit.
			c.mu.Unlock()
			return
		}
		c.pending = nil
		result := Apply(c.products, c.criteria)
		c.mu.Unlock()

		c.onResult(result)
	})
	c.pending = t
}

func (c *Controller) cancelLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
