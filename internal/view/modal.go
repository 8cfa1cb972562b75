package view

import "sweetbox/internal/model"

// ModalState tracks which storefront dialogs are shown. The overlay is shown
// while any dialog is open.
type ModalState struct {
	confirm bool
	cart    bool
	overlay bool
}

// ModalsFor returns the state with a single dialog open.
func ModalsFor(m model.Modal) ModalState {
	var s ModalState
	s.Open(m)
	return s
}

// Open shows the dialog together with the overlay.
func (s *ModalState) Open(m model.Modal) {
	switch m {
	case model.ModalConfirmAdd:
		s.confirm = true
	case model.ModalViewCart:
		s.cart = true
	default:
		return
	}
	s.overlay = true
}

// Close hides the dialog, and the overlay once no dialog remains.
func (s *ModalState) Close(m model.Modal) {
	switch m {
	case model.ModalConfirmAdd:
		s.confirm = false
	case model.ModalViewCart:
		s.cart = false
	default:
		return
	}
	s.overlay = s.confirm || s.cart
}

// OverlayClick closes every open dialog.
func (s *ModalState) OverlayClick() {
	s.Close(model.ModalViewCart)
	s.Close(model.ModalConfirmAdd)
}

// Visible reports whether the dialog is shown.
func (s ModalState) Visible(m model.Modal) bool {
	switch m {
	case model.ModalConfirmAdd:
		return s.confirm
	case model.ModalViewCart:
		return s.cart
	default:
		return false
	}
}

// Overlay reports whether the shared overlay is shown.
func (s ModalState) Overlay() bool {
	return s.overlay
}

// Active returns the dialog to reopen after a redirect. The cart wins when
// both are open.
func (s ModalState) Active() model.Modal {
	switch {
	case s.cart:
		return model.ModalViewCart
	case s.confirm:
		return model.ModalConfirmAdd
	default:
		return model.ModalNone
	}
}
