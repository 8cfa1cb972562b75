package shell

import "strings"

// HomePath is the storefront home page.
const HomePath = "/"

// Menu is the mobile navigation toggle. The button and the panel always share
// the same active state.
type Menu struct {
	Active bool
}

// Toggle flips the menu open or closed.
func (m *Menu) Toggle() {
	m.Active = !m.Active
}

// SelectLink closes the menu after a navigation link is chosen.
func (m *Menu) SelectLink() {
	m.Active = false
}

// ButtonClass and PanelClass return the CSS classes for the current state.
func (m Menu) ButtonClass() string { return withActive("burger", m.Active) }
func (m Menu) PanelClass() string  { return withActive("nav", m.Active) }

func withActive(base string, active bool) string {
	if active {
		return base + " active"
	}
	return base
}

// LinkAction is what a click on a home link should do.
type LinkAction int

const (
	Navigate LinkAction = iota
	ScrollToTop
)

// HomeLinkAction decides how a click on a home link behaves: already on the
// home page the navigation is suppressed and the page scrolls to the top,
// anywhere else it navigates normally.
func HomeLinkAction(currentPath string) LinkAction {
	if IsHome(currentPath) {
		return ScrollToTop
	}
	return Navigate
}

// IsHome reports whether path is the home page.
func IsHome(path string) bool {
	return path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, "index.html")
}
