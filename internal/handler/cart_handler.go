package handler

import (
	"net/http"
	"net/url"
	"strings"

	"sweetbox/internal/middleware"
	"sweetbox/internal/model"
	"sweetbox/internal/service"
	"sweetbox/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CartHandler applies storefront actions to the visitor's cart.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context(), middleware.VisitorFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Action handles POST /actions/{action}. JSON clients get the resulting cart;
// form posts are redirected back to the page they came from with the
// resulting dialog open.
func (h *CartHandler) Action(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body", h.logger)
		return
	}

	action, err := view.ParseAction(chi.URLParam(r, "action"), r.PostForm)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	modals := view.ModalsFor(model.ParseModal(r.PostForm.Get("modal")))
	visitor := middleware.VisitorFromContext(r.Context())

	result, err := h.service.Apply(r.Context(), visitor, action, modals)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}

	http.Redirect(w, r, returnPath(r, result.Modals.Active(), result.Pulse), http.StatusSeeOther)
}

// returnPath picks the local page to go back to after a form post: the
// explicit return field, else the referring page, else home. The dialog to
// show is carried in the modal query parameter and a badge pulse in pulse.
func returnPath(r *http.Request, modal model.Modal, pulse bool) string {
	target := "/"
	if ret := r.PostForm.Get("return"); isLocalPath(ret) {
		target = ret
	} else if ref, err := url.Parse(r.Referer()); err == nil && isLocalPath(ref.Path) {
		target = ref.Path
		if ref.RawQuery != "" {
			target += "?" + ref.RawQuery
		}
	}

	u, err := url.Parse(target)
	if err != nil {
		return "/"
	}
	q := u.Query()
	q.Del("modal")
	q.Del("pulse")
	if modal != model.ModalNone {
		q.Set("modal", modal.String())
	}
	if pulse {
		q.Set("pulse", "1")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.Contains(p, "\\")
}
