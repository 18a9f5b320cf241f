// Package cart holds the session-only shopping cart. Carts live in memory
// for the duration of a session and are never persisted; all transitions are
// pure functions returning a new cart value.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/mvaldez/catalogo/internal/domain/product"
)

// Item is a product plus the quantity ordered. Identity for merge purposes
// is the underlying product id.
type Item struct {
	Product  product.Product
	Quantity int
}

// Subtotal is price × quantity for this line.
func (i Item) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an ordered collection of items.
type Cart []Item

// Add merges p into c: an already-present product has its quantity
// incremented, a new one is appended with quantity 1.
func Add(c Cart, p product.Product) Cart {
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].Product.ID == p.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, Item{Product: p, Quantity: 1})
}

// Remove drops the item with the given product id. Unknown ids leave the
// cart unchanged.
func Remove(c Cart, id string) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// Clear returns the empty cart.
func Clear(Cart) Cart {
	return nil
}
