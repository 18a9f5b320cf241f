// Package order turns a cart into the human-readable order summary that is
// handed off to the messaging channel. Pure transformations only; opening
// the share link is the caller's job.
package order

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mvaldez/catalogo/internal/domain/cart"
)

// DefaultCurrency is the currency prefix used in rendered amounts.
const DefaultCurrency = "S/"

// ComputeTotal sums price × quantity over all cart items. The empty cart
// totals zero.
func ComputeTotal(c cart.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Formatter renders order messages with a fixed two-decimal currency style.
type Formatter struct {
	// Currency is the prefix placed before every amount, e.g. "S/".
	Currency string
}

// NewFormatter returns a Formatter using the given currency prefix, falling
// back to DefaultCurrency when empty.
func NewFormatter(currency string) Formatter {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Formatter{Currency: currency}
}

// Amount renders a decimal with the formatter's currency prefix and exactly
// two decimal places.
func (f Formatter) Amount(d decimal.Decimal) string {
	return f.Currency + " " + d.StringFixed(2)
}

// Message produces the order text: a greeting, one line per distinct cart
// item as "▪ {qty}x {name} ({subtotal})", and a bold total line.
// Deterministic for a given cart ordering.
func (f Formatter) Message(c cart.Cart) string {
	var b strings.Builder
	b.WriteString("Hola, me interesa hacer el siguiente pedido:\n\n")

	total := decimal.Zero
	for _, item := range c {
		subtotal := item.Subtotal()
		total = total.Add(subtotal)

		b.WriteString("▪ ")
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteString("x ")
		b.WriteString(item.Product.Name)
		b.WriteString(" (")
		b.WriteString(f.Amount(subtotal))
		b.WriteString(")\n")
	}

	b.WriteString("\n*Total a pagar: ")
	b.WriteString(f.Amount(total))
	b.WriteString("*")
	return b.String()
}
