package view

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"sweetbox/internal/cart"
	"sweetbox/internal/catalog"
	"sweetbox/internal/model"

	"github.com/rs/zerolog"
)

// Storefront actions. Every purchase, quantity and dialog control routes one
// of these through Dispatcher.Dispatch.
const (
	ActionAdd          = "add"
	ActionAddNamed     = "add-named"
	ActionInc          = "inc"
	ActionDec          = "dec"
	ActionRemove       = "remove"
	ActionClear        = "clear"
	ActionOpenCart     = "open-cart"
	ActionCloseCart    = "close-cart"
	ActionCloseConfirm = "close-confirm"
	ActionOverlay      = "overlay"
)

// Action is a named UI action with the data attributes of its control.
type Action struct {
	Name      string
	ProductID int
	Index     int
	ItemName  string
	ItemPrice string
}

// ParseAction reads the data attributes of an action from submitted form
// values: id for add, name and price for add-named, idx for the cart rows.
func ParseAction(name string, form url.Values) (Action, error) {
	a := Action{Name: name}

	switch name {
	case ActionAdd:
		id, err := strconv.Atoi(strings.TrimSpace(form.Get("id")))
		if err != nil {
			return a, fmt.Errorf("failed to parse product id: %w", model.ErrMissingField)
		}
		a.ProductID = id
	case ActionAddNamed:
		a.ItemName = strings.TrimSpace(form.Get("name"))
		a.ItemPrice = strings.TrimSpace(form.Get("price"))
		if a.ItemName == "" || a.ItemPrice == "" {
			return a, fmt.Errorf("name and price are required: %w", model.ErrMissingField)
		}
	case ActionInc, ActionDec, ActionRemove:
		idx, err := strconv.Atoi(strings.TrimSpace(form.Get("idx")))
		if err != nil {
			return a, fmt.Errorf("failed to parse cart index: %w", model.ErrMissingField)
		}
		a.Index = idx
	case ActionClear, ActionOpenCart, ActionCloseCart, ActionCloseConfirm, ActionOverlay:
	default:
		return a, model.ErrUnknownAction
	}

	return a, nil
}

// Dispatcher routes UI actions into the cart store and the dialog state.
type Dispatcher struct {
	catalog catalog.Store
	suffix  string
	logger  zerolog.Logger
}

// NewDispatcher creates a dispatcher resolving product ids against store.
func NewDispatcher(store catalog.Store, suffix string, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		catalog: store,
		suffix:  suffix,
		logger:  logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch applies the action to the shopper's cart and dialogs.
func (d *Dispatcher) Dispatch(ctx context.Context, c *cart.Store, modals *ModalState, a Action) error {
	switch a.Name {
	case ActionAdd:
		p, err := d.catalog.ByID(ctx, a.ProductID)
		if err != nil {
			return err
		}
		c.Add(ctx, p.Name, FormatPrice(p.Price, d.suffix))
		modals.Open(model.ModalConfirmAdd)
	case ActionAddNamed:
		if a.ItemName == "" || a.ItemPrice == "" {
			return model.ErrMissingField
		}
		c.Add(ctx, a.ItemName, a.ItemPrice)
		modals.Open(model.ModalConfirmAdd)
	case ActionInc, ActionDec:
		delta := 1
		if a.Name == ActionDec {
			delta = -1
		}
		if err := c.SetQuantity(ctx, a.Index, delta); err != nil {
			return err
		}
	case ActionRemove:
		c.Remove(ctx, a.Index)
	case ActionClear:
		c.Clear(ctx)
	case ActionOpenCart:
		modals.Open(model.ModalViewCart)
	case ActionCloseCart:
		modals.Close(model.ModalViewCart)
	case ActionCloseConfirm:
		modals.Close(model.ModalConfirmAdd)
	case ActionOverlay:
		modals.OverlayClick()
	default:
		return model.ErrUnknownAction
	}

	d.logger.Debug().Str("action", a.Name).Int("count", c.Count()).Msg("action dispatched")
	return nil
}

// Badge is a cart listener that remembers the latest badge state.
type Badge struct {
	Count int
	Pulse bool
}

func (b *Badge) CountChanged(count int, pulse bool) {
	b.Count = count
	b.Pulse = b.Pulse || pulse
}

func (b *Badge) CartChanged(model.CartState) {}
