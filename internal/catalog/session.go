// Package catalog holds the per-session storefront state: the product list
// refreshed from the repository, the cart, the active filters, and the view
// mode. The state is an explicit value passed between transitions; it is
// rebuilt from the repository on load and never persisted.
package catalog

import (
	"context"

	"github.com/mvaldez/catalogo/internal/domain/cart"
	"github.com/mvaldez/catalogo/internal/domain/product"
)

// View selects which storefront surface is active.
type View int

const (
	ViewStore View = iota
	ViewAdmin
	ViewCart
)

// Session is the in-memory state of one storefront session. Products are
// read-only copies; after any repository mutation the session must be
// refreshed rather than patched in place.
type Session struct {
	Products []product.Product
	Cart     cart.Cart
	Search   string
	Category string
	View     View
}

// NewSession loads the product list from repo and returns the initial state:
// empty cart, empty search, all categories, store view.
func NewSession(ctx context.Context, repo product.Repository) (Session, error) {
	s := Session{Category: CategoryAll}
	return s.Refresh(ctx, repo)
}

// Refresh re-reads the product list from repo, leaving everything else
// untouched.
func (s Session) Refresh(ctx context.Context, repo product.Repository) (Session, error) {
	products, err := repo.ListAll(ctx)
	if err != nil {
		return s, err
	}
	s.Products = products
	return s, nil
}

// WithSearch sets the active search term.
func (s Session) WithSearch(term string) Session {
	s.Search = term
	return s
}

// WithCategory sets the active category filter. Empty means CategoryAll.
func (s Session) WithCategory(category string) Session {
	if category == "" {
		category = CategoryAll
	}
	s.Category = category
	return s
}

// WithView switches the active view.
func (s Session) WithView(v View) Session {
	s.View = v
	return s
}

// Visible applies the active filters to the session's product list.
func (s Session) Visible() []product.Product {
	return Filter(s.Products, s.Search, s.Category)
}

// AddToCart merges p into the cart and counts the add as interest on the
// product's views counter, matching the storefront's original behavior.
func (s Session) AddToCart(ctx context.Context, repo product.Repository, p product.Product) (Session, error) {
	s.Cart = cart.Add(s.Cart, p)
	if err := repo.IncrementViews(ctx, p.ID); err != nil {
		return s, err
	}
	return s.Refresh(ctx, repo)
}

// RemoveFromCart drops the product from the cart.
func (s Session) RemoveFromCart(id string) Session {
	s.Cart = cart.Remove(s.Cart, id)
	return s
}

// ClearCart empties the cart.
func (s Session) ClearCart() Session {
	s.Cart = cart.Clear(s.Cart)
	return s
}
