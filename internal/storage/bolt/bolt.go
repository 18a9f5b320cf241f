// Package bolt persists the catalog blob in an embedded bbolt database.
package bolt

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"go.etcd.io/bbolt"
)

var (
	bucketName = []byte("catalog")
	productKey = []byte("products")
)

// Store is a single-slot blob store backed by a bbolt file.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database file at path and ensures the catalog
// bucket exists.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt db")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}

	return &Store{db: db}, nil
}

// Load returns the stored blob, or ok=false when nothing has been stored.
func (s *Store) Load(_ context.Context) ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get(productKey)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "load")
	}
	return data, data != nil, nil
}

// Store writes the blob. bbolt transactions are all-or-nothing, so a failed
// write leaves the previous blob intact.
func (s *Store) Store(_ context.Context, data []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(productKey, data)
	})
	return errors.Wrap(err, "store")
}

// Ping verifies the database is readable. Used by the readiness check.
func (s *Store) Ping(_ context.Context) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketName) == nil {
			return errors.New("catalog bucket missing")
		}
		return nil
	})
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}
