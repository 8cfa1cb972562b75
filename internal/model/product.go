package model

import "slices"

// Dietary tags recognised by the catalogue filters.
const (
	TagVegan       = "vegan"
	TagSugarFree   = "sugar-free"
	TagLactoseFree = "lactose-free"
)

// DietaryTags lists the dietary tags in the order the filter panel shows them.
var DietaryTags = []string{TagVegan, TagSugarFree, TagLactoseFree}

// Product represents a bakery item in the catalogue.
// Products are built once when the catalogue is loaded and never mutated.
type Product struct {
	ID          int      `json:"id" yaml:"id" db:"id"`
	Name        string   `json:"name" yaml:"name" db:"name"`
	Price       float64  `json:"price" yaml:"price" db:"price"`
	Image       string   `json:"image" yaml:"image" db:"image"`
	Tags        []string `json:"tags" yaml:"tags" db:"tags"`
	Badge       string   `json:"badge,omitempty" yaml:"badge,omitempty" db:"badge"`
	BadgeClass  string   `json:"badgeClass,omitempty" yaml:"badgeClass,omitempty" db:"badge_class"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" db:"description"`
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// Catalog is the document shape of an external catalogue file.
type Catalog struct {
	Products []Product `json:"products" yaml:"products"`
}
