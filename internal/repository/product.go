// Package repository implements product.Repository over a single-slot
// key-value backend. The whole catalog is one serialized blob; every
// mutation is a read-modify-write of the full collection.
package repository

import (
	"context"
	"sync"

	"github.com/go-faster/errors"

	"github.com/mvaldez/catalogo/internal/domain/product"
	"github.com/mvaldez/catalogo/internal/storage"
)

// ErrStorageCorrupt is returned when the persisted blob cannot be decoded.
// Callers should treat it as a fatal initialization fault rather than
// discard user data.
var ErrStorageCorrupt = errors.New("catalog storage corrupt")

var _ product.Repository = (*ProductRepository)(nil)

// ProductRepository is the sole authority for durable product records.
type ProductRepository struct {
	kv storage.KV

	// mu serializes the read-modify-write cycle within this process.
	// Cross-process writers remain last-writer-wins.
	mu sync.Mutex
}

// NewProductRepository returns a repository persisting through kv.
func NewProductRepository(kv storage.KV) *ProductRepository {
	return &ProductRepository{kv: kv}
}

// ListAll returns every persisted product in storage order. On first-ever
// access it seeds the store with the built-in sample set and returns it.
func (r *ProductRepository) ListAll(ctx context.Context) ([]product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Upsert replaces the record with the same id in place, or appends it, then
// rewrites the full set.
func (r *ProductRepository) Upsert(ctx context.Context, p product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, p)
	}

	return r.store(ctx, products)
}

// Remove filters the id out of the set and rewrites it. Unknown ids are a
// non-error no-op.
func (r *ProductRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil
	}

	return r.store(ctx, kept)
}

// IncrementViews bumps the views counter of the matching record by exactly
// one and rewrites the full set. Unknown ids are a non-error no-op.
func (r *ProductRepository) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == id {
			products[i].Views++
			return r.store(ctx, products)
		}
	}
	return nil
}

// load reads and decodes the blob, seeding on first access. Caller holds mu.
func (r *ProductRepository) load(ctx context.Context) ([]product.Product, error) {
	data, ok, err := r.kv.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	if !ok {
		seed := product.Seed()
		if err := r.store(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	products, err := decodeProducts(data)
	if err != nil {
		return nil, errors.Wrap(ErrStorageCorrupt, err.Error())
	}
	return products, nil
}

// store encodes and writes the full set. Caller holds mu.
func (r *ProductRepository) store(ctx context.Context, products []product.Product) error {
	if err := r.kv.Store(ctx, encodeProducts(products)); err != nil {
		return errors.Wrap(err, "store catalog")
	}
	return nil
}
