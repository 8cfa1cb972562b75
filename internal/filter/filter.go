// Package filter narrows the catalogue down to what the filter panel asks for.
package filter

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"sweetbox/internal/model"
)

// Form field names of the filter panel.
const (
	FieldSearch   = "q"
	FieldPriceMin = "price-min"
	FieldPriceMax = "price-max"
)

// Apply keeps the products whose name contains the search text
// (case-insensitive), that carry every active dietary tag, and whose price
// lies within [PriceMin, PriceMax]. Catalogue order is preserved. The result
// is never nil, so an empty match is distinguishable from "not filtered".
func Apply(products []model.Product, c model.FilterCriteria) []model.Product {
	query := strings.ToLower(c.SearchText)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, c, query) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single product passes the criteria. lowerQuery is
// the already lower-cased search text.
func Matches(p model.Product, c model.FilterCriteria, lowerQuery string) bool {
	if lowerQuery != "" && !strings.Contains(strings.ToLower(p.Name), lowerQuery) {
		return false
	}
	for _, flag := range c.Flags {
		if !p.HasTag(flag) {
			return false
		}
	}
	return p.Price >= c.PriceMin && p.Price <= c.PriceMax
}

// ParseCriteria rebuilds criteria from the filter panel's form values.
// Dietary checkboxes are named after their tag. Empty or unparsable prices fall
// back to the open bounds, as do a zero upper bound.
func ParseCriteria(values url.Values) model.FilterCriteria {
	c := model.DefaultFilterCriteria()
	c.SearchText = values.Get(FieldSearch)

	for _, tag := range model.DietaryTags {
		if checked(values.Get(tag)) {
			c.Flags = append(c.Flags, tag)
		}
	}

	if v, ok := parsePrice(values.Get(FieldPriceMin)); ok {
		c.PriceMin = v
	}
	if v, ok := parsePrice(values.Get(FieldPriceMax)); ok && v != 0 {
		c.PriceMax = v
	}
	return c
}

// Values is the inverse of ParseCriteria, used to keep the controls populated
// after a full page reload.
func Values(c model.FilterCriteria) url.Values {
	v := url.Values{}
	if c.SearchText != "" {
		v.Set(FieldSearch, c.SearchText)
	}
	for _, f := range c.Flags {
		v.Set(f, "on")
	}
	if c.PriceMin > 0 {
		v.Set(FieldPriceMin, strconv.FormatFloat(c.PriceMin, 'f', -1, 64))
	}
	if !math.IsInf(c.PriceMax, 1) {
		v.Set(FieldPriceMax, strconv.FormatFloat(c.PriceMax, 'f', -1, 64))
	}
	return v
}

func checked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
