// Package cart owns the shopping cart and keeps it synchronised with
// key-value storage.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"sweetbox/internal/model"
	"sweetbox/internal/storage"

	"github.com/rs/zerolog"
)

// Storage keys of the persisted payload.
const (
	KeyEntries = "sweetboxCart"
	KeyCount   = "sweetboxCartCount"
)

// DegradedNotice is shown once persistence has failed and the cart only lives
// in memory.
const DegradedNotice = "Your cart could not be saved. It will be kept until you close the shop."

// Listener receives the view side effects of cart mutations.
type Listener interface {
	// CountChanged updates the badge. pulse asks for the pulse animation.
	CountChanged(count int, pulse bool)

	// CartChanged asks the cart panel to re-render.
	CartChanged(state model.CartState)
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) CountChanged(int, bool)      {}
func (NopListener) CartChanged(model.CartState) {}

// Store is the single owner of the cart entries. A Store is not safe for
// concurrent use; each front end owns one per shopper.
type Store struct {
	kv       storage.KV
	listener Listener
	logger   zerolog.Logger

	entries []model.CartEntry
	count   int

	degraded bool
}

// NewStore creates an empty cart over kv. Call Load to restore saved state.
func NewStore(kv storage.KV, listener Listener, logger zerolog.Logger) *Store {
	if listener == nil {
		listener = NopListener{}
	}
	return &Store{
		kv:       kv,
		listener: listener,
		logger:   logger.With().Str("component", "cart").Logger(),
		entries:  []model.CartEntry{},
	}
}

// Load restores the persisted cart. A missing, unreadable or malformed
// payload yields an empty cart; the failure is logged and never returned.
func (s *Store) Load(ctx context.Context) {
	entries, count, err := s.read(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding unreadable cart")
		entries, count = []model.CartEntry{}, 0
	}

	s.entries = entries
	s.count = count
	s.listener.CountChanged(s.count, false)
}

func (s *Store) read(ctx context.Context) ([]model.CartEntry, int, error) {
	raw, ok, err := s.kv.Get(ctx, KeyEntries)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read cart: %w", err)
	}
	if !ok {
		return []model.CartEntry{}, 0, nil
	}

	var entries []model.CartEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, 0, fmt.Errorf("failed to decode cart: %w", err)
	}
	if entries == nil {
		entries = []model.CartEntry{}
	}
	for i, e := range entries {
		if e.Name == "" || e.Quantity < 1 {
			return nil, 0, fmt.Errorf("invalid cart entry at %d", i)
		}
	}

	sum := model.CartState{Entries: entries}.Sum()

	rawCount, ok, err := s.kv.Get(ctx, KeyCount)
	if err != nil || !ok {
		return entries, sum, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil || count < 0 {
		return entries, sum, nil
	}
	return entries, count, nil
}

// Add puts one unit of the named product into the cart. Entries are matched by
// name. The badge count grows by exactly one.
func (s *Store) Add(ctx context.Context, name, priceDisplay string) {
	found := false
	for i := range s.entries {
		if s.entries[i].Name == name {
			s.entries[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.entries = append(s.entries, model.CartEntry{Name: name, Price: priceDisplay, Quantity: 1})
	}

	s.count++
	s.listener.CountChanged(s.count, true)
	s.Persist(ctx)

	s.logger.Debug().Str("name", name).Int("count", s.count).Msg("added to cart")
}

// SetQuantity changes the quantity of the entry at index by delta, which must
// be +1 or -1. An out-of-range index is ignored. Reaching zero removes the
// entry.
func (s *Store) SetQuantity(ctx context.Context, index, delta int) error {
	if delta != 1 && delta != -1 {
		return model.ErrInvalidQuantityDelta
	}
	if index < 0 || index >= len(s.entries) {
		return nil
	}

	s.entries[index].Quantity += delta
	if s.entries[index].Quantity <= 0 {
		s.Remove(ctx, index)
		return nil
	}

	s.recalculate(ctx)
	return nil
}

// Remove deletes the entry at index. An out-of-range index is ignored.
func (s *Store) Remove(ctx context.Context, index int) {
	if index < 0 || index >= len(s.entries) {
		return
	}

	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.recalculate(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.entries = []model.CartEntry{}
	s.recalculate(ctx)
}

func (s *Store) recalculate(ctx context.Context) {
	s.count = model.CartState{Entries: s.entries}.Sum()
	s.listener.CountChanged(s.count, false)
	s.Persist(ctx)
	s.listener.CartChanged(s.Snapshot())
}

// Persist writes the entries and count to storage. After the first failed
// write the cart keeps working in memory and Notice reports the problem.
func (s *Store) Persist(ctx context.Context) {
	if s.degraded {
		return
	}

	payload, err := json.Marshal(s.entries)
	if err != nil {
		s.degrade(err)
		return
	}
	if err := s.kv.Set(ctx, KeyEntries, string(payload)); err != nil {
		s.degrade(err)
		return
	}
	if err := s.kv.Set(ctx, KeyCount, strconv.Itoa(s.count)); err != nil {
		s.degrade(err)
	}
}

func (s *Store) degrade(err error) {
	s.degraded = true
	s.logger.Error().Err(err).Msg("cart persistence failed, continuing in memory")
}

// Notice returns a user-facing message when the cart is no longer persisted.
func (s *Store) Notice() string {
	if s.degraded {
		return DegradedNotice
	}
	return ""
}

// Count returns the badge count.
func (s *Store) Count() int {
	return s.count
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Snapshot returns a copy of the cart state.
func (s *Store) Snapshot() model.CartState {
	entries := make([]model.CartEntry, len(s.entries))
	copy(entries, s.entries)
	return model.CartState{Entries: entries, Count: s.count}
}
