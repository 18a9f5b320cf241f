package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mvaldez/catalogo/internal/domain/cart"
	"github.com/mvaldez/catalogo/internal/domain/product"
)

func newTestCart() cart.Cart {
	headphones := product.Product{
		ID:    "p1",
		Name:  "Auriculares Premium",
		Price: decimal.RequireFromString("150.00"),
	}
	shoes := product.Product{
		ID:    "p2",
		Name:  "Zapatillas Running",
		Price: decimal.RequireFromString("89.99"),
	}

	c := cart.Add(nil, headphones)
	c = cart.Add(c, shoes)
	c = cart.Add(c, shoes)
	return c
}

func TestComputeTotal(t *testing.T) {
	total := ComputeTotal(newTestCart())
	assert.True(t, total.Equal(decimal.RequireFromString("329.98")), "got %s", total)
}

func TestComputeTotal_EmptyCart(t *testing.T) {
	assert.True(t, ComputeTotal(nil).IsZero())
}

func TestMessage(t *testing.T) {
	f := NewFormatter("")

	want := "Hola, me interesa hacer el siguiente pedido:\n\n" +
		"▪ 1x Auriculares Premium (S/ 150.00)\n" +
		"▪ 2x Zapatillas Running (S/ 179.98)\n" +
		"\n*Total a pagar: S/ 329.98*"

	assert.Equal(t, want, f.Message(newTestCart()))
}

func TestMessage_Deterministic(t *testing.T) {
	f := NewFormatter("S/")
	c := newTestCart()
	assert.Equal(t, f.Message(c), f.Message(c))
}

func TestAmount_CustomCurrency(t *testing.T) {
	f := NewFormatter("$")
	assert.Equal(t, "$ 5.00", f.Amount(decimal.NewFromInt(5)))
}
