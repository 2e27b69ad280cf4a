package store

import (
	"encoding/json"

	bolt "github.com/boltdb/bolt"

	"github.com/origintrace/marketplace/internal/models"
)

func (s *Store) ListOrders() ([]models.Order, error) {
	items := []models.Order{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketOrders).ForEach(func(k, v []byte) error {
			var o models.Order
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			items = append(items, o)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
