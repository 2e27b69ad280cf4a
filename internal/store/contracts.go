package store

import (
	"encoding/json"

	bolt "github.com/boltdb/bolt"

	"github.com/origintrace/marketplace/internal/models"
)

// CreateContract assigns the next contract id and persists the record.
func (s *Store) CreateContract(ct *models.WarrantyContract) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketContracts)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		ct.ID = id

		data, err := json.Marshal(ct)
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
}

func (s *Store) GetContract(id uint64) (*models.WarrantyContract, error) {
	var ct models.WarrantyContract
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketContracts).Get(itob(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &ct)
	})
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (s *Store) ListContracts() ([]models.WarrantyContract, error) {
	items := []models.WarrantyContract{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketContracts).ForEach(func(k, v []byte) error {
			var ct models.WarrantyContract
			if err := json.Unmarshal(v, &ct); err != nil {
				return err
			}
			items = append(items, ct)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteContract(id uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketContracts)
		if b.Get(itob(id)) == nil {
			return ErrNotFound
		}
		return b.Delete(itob(id))
	})
}
