// Package view projects catalog, cart, navigation and checkout state into
// HTML. Each Render call fully replaces the cached markup of one section.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	cartdomain "github.com/Apurer/go-storefront/internal/domains/cart/domain"
	catalogdomain "github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	navapp "github.com/Apurer/go-storefront/internal/domains/navigation/application"
	navdomain "github.com/Apurer/go-storefront/internal/domains/navigation/domain"
	"github.com/Apurer/go-storefront/internal/shared/money"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fragment ids match the element ids the page places them in.
const (
	FragmentCatalog = "product-list"
	FragmentCart    = "cart-container"
	FragmentBadge   = "cart-count"
)

// Renderer holds the last projection of every section.
type Renderer struct {
	tmpl   *template.Template
	symbol string

	mu        sync.RWMutex
	fragments map[string]template.HTML
}

// NewRenderer parses the embedded templates. An empty symbol means money.DefaultSymbol.
func NewRenderer(symbol string) (*Renderer, error) {
	if symbol == "" {
		symbol = money.DefaultSymbol
	}
	tmpl, err := template.New("storefront").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r := &Renderer{tmpl: tmpl, symbol: symbol, fragments: map[string]template.HTML{}}
	if err := r.RenderCart(cartdomain.New()); err != nil {
		return nil, err
	}
	if err := r.RenderBadge(0); err != nil {
		return nil, err
	}
	return r, nil
}

type productCard struct {
	ID    int64
	Name  string
	Price string
	Image string
}

// RenderCatalog draws one card per product, each with its own add form.
func (r *Renderer) RenderCatalog(products []catalogdomain.Product) error {
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, productCard{ID: p.ID, Name: p.Name, Price: money.Format(r.symbol, p.Price), Image: p.Image})
	}
	return r.render(FragmentCatalog, "catalog", cards)
}

type cartLine struct {
	ID    int64
	Name  string
	Price string
	Qty   int
}

type cartPanel struct {
	Symbol string
	Empty  bool
	Lines  []cartLine
	Total  string
}

// RenderCart draws the cart lines and summary, or the empty placeholder with
// the summary hidden.
func (r *Renderer) RenderCart(cart *cartdomain.Cart) error {
	if cart == nil {
		cart = cartdomain.New()
	}
	panel := cartPanel{Symbol: r.symbol, Empty: cart.IsEmpty()}
	for _, l := range cart.Lines() {
		panel.Lines = append(panel.Lines, cartLine{ID: l.ProductID, Name: l.Name, Price: money.Format(r.symbol, l.Price), Qty: l.Qty})
	}
	panel.Total = money.Amount(cart.Total())
	return r.render(FragmentCart, "cart", panel)
}

func (r *Renderer) RenderBadge(count int) error {
	return r.render(FragmentBadge, "badge", count)
}

// Fragment returns the last markup rendered for id.
func (r *Renderer) Fragment(id string) template.HTML {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fragments[id]
}

func (r *Renderer) render(id, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", id, err)
	}
	r.mu.Lock()
	r.fragments[id] = template.HTML(buf.String())
	r.mu.Unlock()
	return nil
}

// PageData is the per-request state composed around the cached fragments.
type PageData struct {
	Nav     navapp.State
	Payment checkoutdomain.PaymentMethod
	Receipt *checkoutdomain.Receipt
	Alerts  []string
}

type page struct {
	PageData
	Symbol   string
	Catalog  template.HTML
	Cart     template.HTML
	Badge    template.HTML
	Sections []navdomain.Section
	Methods  []checkoutdomain.PaymentMethod
	Total    string
}

// Hidden reports whether a section carries the hidden class.
func (p page) Hidden(section navdomain.Section) bool {
	return p.Nav.Current != section
}

// Active reports whether a nav entry carries the active marker.
func (p page) Active(section navdomain.Section) bool {
	return p.Nav.Active != "" && p.Nav.Active == section
}

func (p page) ShowReference() bool {
	return p.Payment.RequiresReference()
}

// Page writes the whole document.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	if data.Payment == "" {
		data.Payment = checkoutdomain.PaymentCash
	}
	p := page{
		PageData: data,
		Symbol:   r.symbol,
		Catalog:  r.Fragment(FragmentCatalog),
		Cart:     r.Fragment(FragmentCart),
		Badge:    r.Fragment(FragmentBadge),
		Sections: navdomain.Sections(),
		Methods:  checkoutdomain.PaymentMethods(),
	}
	if data.Receipt != nil {
		p.Total = money.Format(r.symbol, data.Receipt.Total)
	}
	if err := r.tmpl.ExecuteTemplate(w, "layout", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
