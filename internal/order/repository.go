package order

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/vasiliy-maslov/storefront/internal/storage"
)

// ordersKey is the fixed key the whole order log is serialized under.
const ordersKey = "orders_v2"

// Repository persists the full order log. Load returns nil, nil when no
// log has been saved yet.
type Repository interface {
	Load() ([]Order, error)
	Save(orders []Order) error
}

type boltRepository struct {
	db *bolt.DB
}

func NewBoltRepository(db *bolt.DB) Repository {
	return &boltRepository{db: db}
}

func (r *boltRepository) Load() ([]Order, error) {
	data, err := storage.Get(r.db, ordersKey)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load order log: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("repository: failed to decode order log: %w", err)
	}
	return orders, nil
}

func (r *boltRepository) Save(orders []Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("repository: failed to encode order log: %w", err)
	}
	if err := storage.Put(r.db, ordersKey, data); err != nil {
		return fmt.Errorf("repository: failed to save order log: %w", err)
	}
	return nil
}
