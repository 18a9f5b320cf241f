// Package assistant generates marketing copy for products through an
// external text-generation service. Failures never cross this boundary:
// callers always get a usable description string.
package assistant

import (
	"context"

	"github.com/shopspring/decimal"
)

// Fallback is returned whenever the underlying call fails for any reason
// (network, credential, malformed response).
const Fallback = "¡Increíble producto a un excelente precio! Contáctanos para más detalles."

// NoText is returned when the service answers successfully but produces no
// usable text.
const NoText = "Descripción no disponible."

// MaxDescriptionLen caps generated descriptions, in runes.
const MaxDescriptionLen = 150

// Request carries the product details the description is generated from.
type Request struct {
	Name     string
	Price    decimal.Decimal
	Category string
}

// Result is the assistant's outcome. Generated reports whether Text came
// from the service or is one of the fixed fallback strings.
type Result struct {
	Text      string
	Generated bool
}

// Describer produces a short promotional description for a product.
// Implementations must recover from every failure internally.
type Describer interface {
	Describe(ctx context.Context, req Request) Result
}
