// Package view renders the storefront: the product grid, the cart panel, the
// dialogs and the full pages built around them.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strconv"

	"sweetbox/internal/model"
	"sweetbox/internal/shell"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static serves the embedded stylesheet and other assets under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Renderer executes the embedded templates. Every interpolated value is
// escaped by html/template; only sanitised markdown is marked safe.
type Renderer struct {
	templates *template.Template
	markdown  goldmark.Markdown
	policy    *bluemonday.Policy
	suffix    string
	logger    zerolog.Logger
}

// NewRenderer parses the templates once. suffix is the currency shown after
// every amount.
func NewRenderer(suffix string, logger zerolog.Logger) (*Renderer, error) {
	r := &Renderer{
		markdown: goldmark.New(),
		policy:   newDescriptionPolicy(),
		suffix:   suffix,
		logger:   logger.With().Str("component", "view").Logger(),
	}

	funcs := template.FuncMap{
		"price":  r.PriceDisplay,
		"amount": r.Amount,
		"visible": func(s ModalState, name string) bool {
			return s.Visible(model.ParseModal(name))
		},
		// Chrome links are compiled-in, including tel: and mailto: targets.
		"chromeURL":       func(l shell.Link) template.URL { return template.URL(l.Href) },
		"revealThreshold": func() float64 { return shell.RevealThreshold },
		"revealMargin":    func() string { return shell.RevealRootMargin },
	}

	tmpl, err := template.New("sweetbox").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.templates = tmpl

	return r, nil
}

func newDescriptionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// PriceDisplay formats a catalogue price with the currency suffix, the form
// cart entries store it in.
func (r *Renderer) PriceDisplay(price float64) string {
	return FormatPrice(price, r.suffix)
}

// Amount formats a whole total with the currency suffix.
func (r *Renderer) Amount(total int) string {
	if r.suffix == "" {
		return strconv.Itoa(total)
	}
	return strconv.Itoa(total) + " " + r.suffix
}

// Markdown converts a product description to sanitised HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render description: %w", err)
	}

	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Page renders a complete storefront page.
func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.execute(w, "page", p)
}

// ProductGrid renders the product list. An empty list renders the
// no-products state.
func (r *Renderer) ProductGrid(w io.Writer, products []model.Product) error {
	return r.execute(w, "product-grid", products)
}

// CartPanel renders the cart rows and totals, or the cart-empty state.
func (r *Renderer) CartPanel(w io.Writer, state model.CartState) error {
	return r.execute(w, "cart-panel", NewCartView(state))
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	// Render into a buffer so a failing template never leaves half a page.
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error().Err(err).Str("template", name).Msg("failed to render template")
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
