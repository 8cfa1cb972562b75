package service

import (
	"context"
	"fmt"
	"sync"

	"sweetbox/internal/cart"
	"sweetbox/internal/model"
	"sweetbox/internal/storage"
	"sweetbox/internal/view"

	"github.com/rs/zerolog"
)

// cartService implements CartService. Every call opens the visitor's cart
// from storage, so no cart outlives a request. Calls for the same visitor are
// serialised from load to persist.
type cartService struct {
	backend    storage.Backend
	dispatcher *view.Dispatcher
	logger     zerolog.Logger
	locks      sync.Map // visitor -> *sync.Mutex
}

// NewCartService creates a new cart service.
func NewCartService(backend storage.Backend, dispatcher *view.Dispatcher, logger zerolog.Logger) CartService {
	return &cartService{
		backend:    backend,
		dispatcher: dispatcher,
		logger:     logger.With().Str("service", "cart").Logger(),
	}
}

// Get loads the visitor's cart without changing it.
func (s *cartService) Get(ctx context.Context, visitor string) (*CartResult, error) {
	unlock := s.lock(visitor)
	defer unlock()

	store, badge, err := s.open(ctx, visitor)
	if err != nil {
		return nil, err
	}
	return newCartResult(store, badge, view.ModalState{}), nil
}

// Apply dispatches a storefront action against the visitor's cart.
func (s *cartService) Apply(ctx context.Context, visitor string, action view.Action, modals view.ModalState) (*CartResult, error) {
	unlock := s.lock(visitor)
	defer unlock()

	store, badge, err := s.open(ctx, visitor)
	if err != nil {
		return nil, err
	}

	if err := s.dispatcher.Dispatch(ctx, store, &modals, action); err != nil {
		s.logger.Warn().
			Err(err).
			Str("visitor", visitor).
			Str("action", action.Name).
			Msg("action rejected")
		return nil, err
	}

	s.logger.Info().
		Str("visitor", visitor).
		Str("action", action.Name).
		Int("count", store.Count()).
		Msg("cart action applied")

	return newCartResult(store, badge, modals), nil
}

func (s *cartService) lock(visitor string) func() {
	mu, _ := s.locks.LoadOrStore(visitor, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func (s *cartService) open(ctx context.Context, visitor string) (*cart.Store, *view.Badge, error) {
	kv, err := s.backend.Namespace(visitor)
	if err != nil {
		s.logger.Error().Err(err).Str("visitor", visitor).Msg("failed to open cart storage")
		return nil, nil, fmt.Errorf("failed to open cart storage: %w", model.ErrStorageUnavailable)
	}

	badge := &view.Badge{}
	store := cart.NewStore(kv, badge, s.logger)
	store.Load(ctx)

	return store, badge, nil
}

func newCartResult(store *cart.Store, badge *view.Badge, modals view.ModalState) *CartResult {
	return &CartResult{
		State:  store.Snapshot(),
		Pulse:  badge.Pulse,
		Modal:  modals.Active().String(),
		Notice: store.Notice(),
		Modals: modals,
	}
}
