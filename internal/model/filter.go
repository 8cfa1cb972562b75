package model

import "math"

// FilterCriteria is rebuilt from the filter controls on every application.
type FilterCriteria struct {
	SearchText string
	Flags      []string
	PriceMin   float64
	PriceMax   float64
}

// DefaultFilterCriteria returns the identity filter.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		PriceMin: 0,
		PriceMax: math.Inf(1),
	}
}

// HasFlag reports whether the dietary flag is active.
func (c FilterCriteria) HasFlag(flag string) bool {
	for _, f := range c.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
