package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultImage is used when a product is saved without an image reference.
const DefaultImage = "https://picsum.photos/400/400"

// Validation errors reported before a product reaches the repository.
var (
	ErrEmptyName    = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price must be greater than zero")
)

// Product represents a single catalog item.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	// Image is either an external URL or an embedded data URI.
	Image string
	Views int
}

// Validate checks the invariants the admin form enforces before saving:
// a non-empty name and a strictly positive price.
func (p Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

// NewID generates an identifier for a freshly created product.
func NewID() string {
	return uuid.New().String()
}

// Repository defines durable CRUD access to the product collection.
// Implementations persist the whole collection as one unit; see
// internal/repository.
type Repository interface {
	// ListAll returns every persisted product in storage order, seeding
	// the store with the built-in sample set on first access.
	ListAll(ctx context.Context) ([]Product, error)
	// Upsert replaces the record with the same id in place, or appends.
	Upsert(ctx context.Context, p Product) error
	// Remove deletes the record with the given id. Unknown ids are a no-op.
	Remove(ctx context.Context, id string) error
	// IncrementViews bumps the views counter of the given record by one.
	// Unknown ids are a no-op.
	IncrementViews(ctx context.Context, id string) error
}
