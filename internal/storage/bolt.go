package storage

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// Bucket is the single bucket all persisted storefront state lives in.
const Bucket = "storefront"

// Open opens (or creates) the local key-value store and makes sure the
// storefront bucket exists.
func Open(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(Bucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: failed to create bucket: %w", err)
	}

	log.Info().Str("path", path).Msg("Local store opened")
	return db, nil
}

// Get reads the value under key. A missing key returns nil, nil.
func Get(db *bolt.DB, key string) ([]byte, error) {
	var out []byte
	err := db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(Bucket)).Get([]byte(key))
		if v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to read %q: %w", key, err)
	}
	return out, nil
}

// Put writes the value under key.
func Put(db *bolt.DB, key string, value []byte) error {
	err := db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(Bucket)).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("storage: failed to write %q: %w", key, err)
	}
	return nil
}
