package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sweetbox/internal/cart"
	"sweetbox/internal/filter"
	"sweetbox/internal/middleware"
	"sweetbox/internal/model"
	"sweetbox/internal/service"
	"sweetbox/internal/shell"
	"sweetbox/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// relatedCount is the size of the similar products block.
const relatedCount = 4

// PageHandler renders the storefront pages and their fragments.
type PageHandler struct {
	products service.ProductService
	carts    service.CartService
	renderer *view.Renderer
	logger   zerolog.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(
	products service.ProductService,
	carts service.CartService,
	renderer *view.Renderer,
	logger zerolog.Logger,
) *PageHandler {
	return &PageHandler{
		products: products,
		carts:    carts,
		renderer: renderer,
		logger:   logger.With().Str("handler", "page").Logger(),
	}
}

// Index handles GET /, the catalogue with its filter panel.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	criteria := filter.ParseCriteria(r.URL.Query())

	products, err := h.products.List(r.Context(), criteria)
	if err != nil {
		h.serverError(w, err)
		return
	}

	page := h.page(r, shell.PageIndex, "Catalogue")
	page.Products = products
	page.Filter = view.NewFilterForm(criteria)

	h.render(w, http.StatusOK, page)
}

// Product handles GET /product/{id}.
func (h *PageHandler) Product(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, err)
		return
	}

	related, err := h.products.Related(r.Context(), id, relatedCount)
	if err != nil {
		h.logger.Warn().Err(err).Int("product_id", id).Msg("rendering product without related products")
		related = nil
	}

	description, err := h.renderer.Markdown(product.Description)
	if err != nil {
		h.logger.Warn().Err(err).Int("product_id", id).Msg("rendering product without description")
		description = ""
	}

	page := h.page(r, shell.PageProduct, product.Name)
	page.Product = product
	page.Description = description
	page.Related = related

	h.render(w, http.StatusOK, page)
}

// About handles GET /about.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, h.page(r, shell.PageAbout, "About us"))
}

// Contacts handles GET /contacts.
func (h *PageHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, h.page(r, shell.PageContacts, "Contacts"))
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, h.page(r, shell.PageNotFound, "Page not found"))
}

// ProductsFragment handles GET /fragments/products, the grid alone for live
// search.
func (h *PageHandler) ProductsFragment(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), filter.ParseCriteria(r.URL.Query()))
	if err != nil {
		h.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.ProductGrid(w, products); err != nil {
		h.logger.Error().Err(err).Msg("failed to render product grid")
	}
}

// CartFragment handles GET /fragments/cart, the cart panel alone.
func (h *PageHandler) CartFragment(w http.ResponseWriter, r *http.Request) {
	result, err := h.carts.Get(r.Context(), middleware.VisitorFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.CartPanel(w, result.State); err != nil {
		h.logger.Error().Err(err).Msg("failed to render cart panel")
	}
}

// page builds the chrome, cart and dialogs shared by every page.
func (h *PageHandler) page(r *http.Request, name, title string) view.Page {
	chrome := shell.NewChrome(name).ForPath(r.URL.Path)
	if r.URL.Query().Get("menu") == "open" {
		chrome.Menu.Toggle()
	}

	page := view.Page{
		Name:   name,
		Title:  title,
		Path:   currentPath(r),
		Chrome: chrome,
		Modals: view.ModalsFor(model.ParseModal(r.URL.Query().Get("modal"))),
	}

	result, err := h.carts.Get(r.Context(), middleware.VisitorFromContext(r.Context()))
	if err != nil {
		h.logger.Warn().Err(err).Msg("rendering page with an unsaved cart")
		page.Cart = view.CartView{Notice: cart.DegradedNotice}
		return page
	}

	page.Cart = view.NewCartView(result.State)
	page.Cart.Pulse = result.Pulse || r.URL.Query().Get("pulse") == "1"
	page.Cart.Notice = result.Notice
	return page
}

// currentPath is the request URL without dialog, menu and pulse state, the
// target of every close link.
func currentPath(r *http.Request) string {
	q := r.URL.Query()
	q.Del("modal")
	q.Del("menu")
	q.Del("pulse")
	if len(q) == 0 {
		return r.URL.Path
	}
	return r.URL.Path + "?" + q.Encode()
}

func (h *PageHandler) render(w http.ResponseWriter, status int, page view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Page(w, page); err != nil {
		h.logger.Error().Err(err).Str("page", page.Name).Msg("failed to render page")
	}
}

func (h *PageHandler) serverError(w http.ResponseWriter, err error) {
	h.logger.Error().Err(err).Msg("failed to build page")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
