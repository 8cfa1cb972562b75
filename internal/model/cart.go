package model

// CartEntry is a single line of the cart. Entries are keyed by Name, not by
// product id, so items added from static "similar products" blocks merge with
// items added from the catalogue grid.
type CartEntry struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// CartState is the ordered list of entries plus the badge count.
type CartState struct {
	Entries []CartEntry `json:"entries"`
	Count   int         `json:"count"`
}

// Sum returns the total quantity across all entries.
func (s CartState) Sum() int {
	total := 0
	for _, e := range s.Entries {
		total += e.Quantity
	}
	return total
}

// Empty reports whether the cart holds no entries.
func (s CartState) Empty() bool {
	return len(s.Entries) == 0
}
