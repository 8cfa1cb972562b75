package model

// Modal identifies one of the storefront dialogs.
type Modal int

const (
	ModalNone Modal = iota
	ModalConfirmAdd
	ModalViewCart
)

// String returns the element id the dialog is rendered with.
func (m Modal) String() string {
	switch m {
	case ModalConfirmAdd:
		return "confirm-modal"
	case ModalViewCart:
		return "view-cart-modal"
	default:
		return "none"
	}
}

// ParseModal maps a query value to a dialog. Unknown values map to ModalNone.
func ParseModal(s string) Modal {
	switch s {
	case "confirm", "confirm-modal":
		return ModalConfirmAdd
	case "cart", "view-cart-modal":
		return ModalViewCart
	default:
		return ModalNone
	}
}
