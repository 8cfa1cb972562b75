package service

import (
	"context"

	"sweetbox/internal/model"
	"sweetbox/internal/view"
)

// ProductService defines read operations over the catalogue.
type ProductService interface {
	// List returns the catalogue narrowed by the filter criteria.
	List(ctx context.Context, criteria model.FilterCriteria) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Related returns up to n products similar to the given one.
	Related(ctx context.Context, id, n int) ([]model.Product, error)
}

// CartService defines operations on a visitor's cart.
type CartService interface {
	// Get loads the visitor's cart without changing it.
	Get(ctx context.Context, visitor string) (*CartResult, error)

	// Apply dispatches a storefront action against the visitor's cart.
	Apply(ctx context.Context, visitor string, action view.Action, modals view.ModalState) (*CartResult, error)
}

// CartResult is the cart and dialog state after an operation.
type CartResult struct {
	State  model.CartState `json:"cart"`
	Pulse  bool            `json:"pulse"`
	Modal  string          `json:"modal"`
	Notice string          `json:"notice,omitempty"`

	Modals view.ModalState `json:"-"`
}
