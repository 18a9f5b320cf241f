// Package storage defines the key-value backend the product repository
// persists through. The repository stores the whole catalog as one blob, so
// the backend only needs to load and store a single value.
package storage

import "context"

// KV is a single-slot blob store. Load reports ok=false when nothing has
// been stored yet, which the repository treats as first-ever access.
type KV interface {
	Load(ctx context.Context) (data []byte, ok bool, err error)
	Store(ctx context.Context, data []byte) error
}
