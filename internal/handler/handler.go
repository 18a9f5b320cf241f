// Package handler exposes the storefront over HTTP: catalog browsing and
// filtering, the single-operator session cart, admin CRUD, description
// generation, and the order/share handoff links.
package handler

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/mvaldez/catalogo/internal/assistant"
	"github.com/mvaldez/catalogo/internal/catalog"
	"github.com/mvaldez/catalogo/internal/domain/order"
	"github.com/mvaldez/catalogo/internal/domain/product"
)

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// CatalogURL is the public storefront address embedded in share texts.
	CatalogURL string
	// Currency is the prefix used in rendered amounts, e.g. "S/".
	Currency string
}

// Handler wires the storefront HTTP surface to the domain components. The
// cart belongs to one operator session living for the process lifetime,
// matching the storefront's single-operator usage.
type Handler struct {
	repo      product.Repository
	describer assistant.Describer
	formatter order.Formatter
	cfg       Config

	// mu guards session: HTTP requests arrive concurrently even though the
	// storefront is operated one action at a time.
	mu      sync.Mutex
	session catalog.Session

	// generating guards the description trigger so a pending request
	// blocks duplicates without blocking anything else.
	generating sync.Mutex
}

// New constructs a Handler.
func New(cfg Config, repo product.Repository, describer assistant.Describer) *Handler {
	return &Handler{
		repo:      repo,
		describer: describer,
		formatter: order.NewFormatter(cfg.Currency),
		cfg:       cfg,
		session:   catalog.Session{Category: catalog.CategoryAll},
	}
}

// Routes returns the storefront API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.saveProduct)
		r.Delete("/{id}", h.deleteProduct)
		r.Get("/{id}/share", h.shareProduct)
	})
	r.Get("/catalog/share", h.shareCatalog)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Post("/{productID}", h.addToCart)
		r.Delete("/{productID}", h.removeFromCart)
		r.Delete("/", h.clearCart)
	})
	r.Post("/orders/handoff", h.orderHandoff)

	r.Post("/assistant/description", h.generateDescription)

	return r
}
