package view

import (
	"html/template"
	"math"
	"strconv"

	"sweetbox/internal/filter"
	"sweetbox/internal/model"
	"sweetbox/internal/shell"
)

// CartLine is one rendered cart row. Index addresses the entry in the
// inc/dec/remove actions.
type CartLine struct {
	Index    int
	Name     string
	Quantity int
	Total    int
}

// CartView is the cart panel projection of a cart state.
type CartView struct {
	Lines  []CartLine
	Total  int
	Count  int
	Pulse  bool
	Notice string
}

// Empty reports whether the panel shows the empty state.
func (c CartView) Empty() bool {
	return len(c.Lines) == 0
}

// NewCartView projects the state into rows and totals.
func NewCartView(state model.CartState) CartView {
	v := CartView{
		Lines: make([]CartLine, 0, len(state.Entries)),
		Total: GrandTotal(state.Entries),
		Count: state.Count,
	}
	for i, e := range state.Entries {
		v.Lines = append(v.Lines, CartLine{
			Index:    i,
			Name:     e.Name,
			Quantity: e.Quantity,
			Total:    LineTotal(e),
		})
	}
	return v
}

// FlagOption is one dietary checkbox of the filter panel.
type FlagOption struct {
	Tag     string
	Label   string
	Checked bool
}

// FilterForm keeps the filter panel populated across reloads.
type FilterForm struct {
	Query    string
	Flags    []FlagOption
	PriceMin string
	PriceMax string
}

var flagLabels = map[string]string{
	model.TagVegan:       "Vegan",
	model.TagSugarFree:   "Sugar free",
	model.TagLactoseFree: "Lactose free",
}

// Field names of the filter controls.
func (FilterForm) SearchField() string   { return filter.FieldSearch }
func (FilterForm) PriceMinField() string { return filter.FieldPriceMin }
func (FilterForm) PriceMaxField() string { return filter.FieldPriceMax }

// NewFilterForm renders criteria back into control values.
func NewFilterForm(c model.FilterCriteria) FilterForm {
	f := FilterForm{Query: c.SearchText}
	for _, tag := range model.DietaryTags {
		f.Flags = append(f.Flags, FlagOption{Tag: tag, Label: flagLabels[tag], Checked: c.HasFlag(tag)})
	}
	if c.PriceMin > 0 {
		f.PriceMin = strconv.FormatFloat(c.PriceMin, 'f', -1, 64)
	}
	if !math.IsInf(c.PriceMax, 1) {
		f.PriceMax = strconv.FormatFloat(c.PriceMax, 'f', -1, 64)
	}
	return f
}

// Page is everything a full storefront page needs.
type Page struct {
	Name   string
	Title  string
	Path   string
	Chrome shell.Chrome
	Cart   CartView
	Modals ModalState

	// Catalogue page.
	Products []model.Product
	Filter   FilterForm

	// Product page.
	Product     *model.Product
	Description template.HTML
	Related     []model.Product
}
