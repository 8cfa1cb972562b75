// Package shell composes the page chrome shared by every storefront page and
// holds the small navigation state machines behind it.
package shell

import (
	"strings"
)

// Pages recognised by ActivePage.
const (
	PageIndex    = "index"
	PageAbout    = "about"
	PageContacts = "contacts"
	PageProduct  = "product"
	PageOrder    = "order"
	PageNotFound = "404"
)

// ActivePage derives the current page from the request path.
func ActivePage(path string) string {
	p := strings.ToLower(path)
	switch {
	case strings.Contains(p, "about"):
		return PageAbout
	case strings.Contains(p, "contact"):
		return PageContacts
	case strings.Contains(p, "product"):
		return PageProduct
	case strings.Contains(p, "order"):
		return PageOrder
	case strings.Contains(p, "404"):
		return PageNotFound
	default:
		return PageIndex
	}
}

// Link is a navigation entry.
type Link struct {
	Label  string
	Href   string
	Active bool
}

// FooterColumn is one column of footer links.
type FooterColumn struct {
	Title string
	Links []Link
}

// Chrome is the header, footer and dialog skeleton of a page.
type Chrome struct {
	Brand      string
	ActivePage string
	Nav        []Link
	Footer     []FooterColumn
	About      string
	Menu       Menu
}

// NewChrome builds the chrome for the active page. The catalogue link stays on
// the page when it is already the home page.
func NewChrome(active string) Chrome {
	catalogHref := "/#catalog"
	if active == PageIndex {
		catalogHref = "#catalog"
	}

	return Chrome{
		Brand:      "SweetBox",
		ActivePage: active,
		Nav: []Link{
			{Label: "Home", Href: HomePath, Active: active == PageIndex},
			{Label: "Catalogue", Href: catalogHref},
			{Label: "About us", Href: "/about", Active: active == PageAbout},
			{Label: "Contacts", Href: "/contacts", Active: active == PageContacts},
		},
		Footer: []FooterColumn{
			{
				Title: "Menu",
				Links: []Link{
					{Label: "Home", Href: HomePath},
					{Label: "Catalogue", Href: "/#catalog"},
					{Label: "Our story", Href: "/about#history"},
					{Label: "Contacts", Href: "/contacts"},
				},
			},
			{
				Title: "Customers",
				Links: []Link{
					{Label: "About us", Href: "/about"},
					{Label: "Delivery and payment", Href: "/contacts#delivery"},
					{Label: "Returns", Href: "/contacts#returns"},
				},
			},
			{
				Title: "Contacts",
				Links: []Link{
					{Label: "+380 12 345 67 89", Href: "tel:+380123456789"},
					{Label: "info@sweetbox.ua", Href: "mailto:info@sweetbox.ua"},
				},
			},
		},
		About: "Baking happiness since 2015. Every dessert is made with love and the finest ingredients.",
	}
}

// TopAnchor is the element id home links scroll to when the visitor is
// already on the home page.
const TopAnchor = "top"

// ForPath applies the home link behaviour for the current request path: on
// the home page every home link scrolls to the top instead of reloading.
func (c Chrome) ForPath(path string) Chrome {
	if HomeLinkAction(path) != ScrollToTop {
		return c
	}

	nav := make([]Link, len(c.Nav))
	copy(nav, c.Nav)
	for i := range nav {
		if nav[i].Href == HomePath {
			nav[i].Href = "#" + TopAnchor
		}
	}
	c.Nav = nav
	return c
}
