package service

import (
	"context"
	"errors"
	"fmt"

	"sweetbox/internal/catalog"
	"sweetbox/internal/filter"
	"sweetbox/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	store  catalog.Store
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(store catalog.Store, logger zerolog.Logger) ProductService {
	return &productService{
		store:  store,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// List returns the catalogue narrowed by the filter criteria.
func (s *productService) List(ctx context.Context, criteria model.FilterCriteria) ([]model.Product, error) {
	products, err := s.store.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	filtered := filter.Apply(products, criteria)

	s.logger.Debug().
		Int("total", len(products)).
		Int("matched", len(filtered)).
		Str("query", criteria.SearchText).
		Strs("flags", criteria.Flags).
		Msg("filtered products")

	return filtered, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	if id <= 0 {
		s.logger.Warn().Int("product_id", id).Msg("invalid product ID")
		return nil, model.ErrProductNotFound
	}

	product, err := s.store.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, err
		}
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// Related returns up to n products similar to the given one.
func (s *productService) Related(ctx context.Context, id, n int) ([]model.Product, error) {
	related, err := catalog.Related(ctx, s.store, id, n)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get related products")
		return nil, fmt.Errorf("failed to get related products: %w", err)
	}
	return related, nil
}
