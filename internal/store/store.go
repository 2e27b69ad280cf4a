// Package store is the durable entity store of the marketplace. Every
// entity type lives in its own BoltDB bucket keyed by an 8-byte big-endian
// identifier, so a bucket scan walks records in id order. Identifiers come
// from the bucket's sequence, which Bolt persists together with the data:
// an id handed out once is never reissued, even across process restarts.
package store

import (
	"encoding/binary"
	"errors"
	"time"

	bolt "github.com/boltdb/bolt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

var (
	bucketUsers     = []byte("users")
	bucketDevices   = []byte("devices")
	bucketContracts = []byte("contracts")
	bucketReports   = []byte("reports")
	bucketCarts     = []byte("carts")
	bucketOrders    = []byte("orders")
)

var buckets = [][]byte{
	bucketUsers,
	bucketDevices,
	bucketContracts,
	bucketReports,
	bucketCarts,
	bucketOrders,
}

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file and ensures all entity
// buckets exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
