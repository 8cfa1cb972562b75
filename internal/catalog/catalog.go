// Package catalog holds the read-only product catalogue and the loaders that
// fetch it from its external source.
package catalog

import (
	"context"
	"slices"

	"sweetbox/internal/model"
)

// Store exposes the catalogue. Implementations never mutate products and
// return a fresh slice on every call, so callers may iterate it as often as
// they like.
type Store interface {
	// All returns every product in catalogue order.
	All(ctx context.Context) ([]model.Product, error)

	// ByID returns a single product, or model.ErrProductNotFound.
	ByID(ctx context.Context, id int) (*model.Product, error)
}

// staticStore serves a catalogue that was loaded once at startup.
type staticStore struct {
	products []model.Product
	index    map[int]int
}

// NewStatic builds a Store over products. The slice is copied.
func NewStatic(products []model.Product) Store {
	s := &staticStore{
		products: clone(products),
		index:    make(map[int]int, len(products)),
	}
	for i, p := range s.products {
		s.index[p.ID] = i
	}
	return s
}

// All returns every product in catalogue order.
func (s *staticStore) All(_ context.Context) ([]model.Product, error) {
	return clone(s.products), nil
}

// ByID returns a single product.
func (s *staticStore) ByID(_ context.Context, id int) (*model.Product, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	p := cloneProduct(s.products[i])
	return &p, nil
}

// Related returns up to n products other than the one with id that share at
// least one tag with it, in catalogue order. Products without tags fall back
// to their catalogue neighbours.
func Related(ctx context.Context, store Store, id, n int) ([]model.Product, error) {
	if n <= 0 {
		return []model.Product{}, nil
	}

	current, err := store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	all, err := store.All(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]model.Product, 0, n)
	var others []model.Product
	for _, p := range all {
		if p.ID == id {
			continue
		}
		if sharesTag(*current, p) {
			related = append(related, p)
			if len(related) == n {
				return related, nil
			}
			continue
		}
		others = append(others, p)
	}

	for _, p := range others {
		if len(related) == n {
			break
		}
		related = append(related, p)
	}
	return related, nil
}

func sharesTag(a, b model.Product) bool {
	for _, t := range a.Tags {
		if b.HasTag(t) {
			return true
		}
	}
	return false
}

func clone(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

func cloneProduct(p model.Product) model.Product {
	p.Tags = slices.Clone(p.Tags)
	return p
}
