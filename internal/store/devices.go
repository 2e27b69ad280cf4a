package store

import (
	"encoding/json"

	bolt "github.com/boltdb/bolt"

	"github.com/origintrace/marketplace/internal/models"
)

// CreateDevice assigns the next device id and persists the record.
func (s *Store) CreateDevice(d *models.Device) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDevices)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		d.ID = id

		data, err := json.Marshal(d)
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
}

func (s *Store) GetDevice(id uint64) (*models.Device, error) {
	var d models.Device
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketDevices).Get(itob(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &d)
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) DeleteDevice(id uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDevices)
		if b.Get(itob(id)) == nil {
			return ErrNotFound
		}
		return b.Delete(itob(id))
	})
}

// ListDevices returns all devices in id order.
func (s *Store) ListDevices() ([]models.Device, error) {
	items := []models.Device{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDevices).ForEach(func(k, v []byte) error {
			var d models.Device
			if err := json.Unmarshal(v, &d); err != nil {
				return err
			}
			items = append(items, d)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListUserDevices(userID uint64) ([]models.Device, error) {
	items := []models.Device{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDevices).ForEach(func(k, v []byte) error {
			var d models.Device
			if err := json.Unmarshal(v, &d); err != nil {
				return err
			}
			if d.UserID == userID {
				items = append(items, d)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
