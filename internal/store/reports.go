package store

import (
	"encoding/json"

	bolt "github.com/boltdb/bolt"

	"github.com/origintrace/marketplace/internal/models"
)

// CreateReport assigns the next report id and persists the record.
func (s *Store) CreateReport(r *models.Report) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketReports)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		r.ID = id

		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
}

func (s *Store) GetReport(id uint64) (*models.Report, error) {
	var r models.Report
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketReports).Get(itob(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &r)
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListReports() ([]models.Report, error) {
	items := []models.Report{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketReports).ForEach(func(k, v []byte) error {
			var r models.Report
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			items = append(items, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListDeviceReports(deviceID uint64) ([]models.Report, error) {
	items := []models.Report{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketReports).ForEach(func(k, v []byte) error {
			var r models.Report
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			if r.DeviceID == deviceID {
				items = append(items, r)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListUserReports returns reports whose device belongs to the given user.
// The device-owner mapping and the report scan run inside one read
// transaction, so both buckets are seen at the same snapshot.
func (s *Store) ListUserReports(userID uint64) ([]models.Report, error) {
	items := []models.Report{}
	err := s.db.View(func(tx *bolt.Tx) error {
		owners := map[uint64]uint64{}
		err := tx.Bucket(bucketDevices).ForEach(func(k, v []byte) error {
			var d models.Device
			if err := json.Unmarshal(v, &d); err != nil {
				return err
			}
			owners[d.ID] = d.UserID
			return nil
		})
		if err != nil {
			return err
		}

		return tx.Bucket(bucketReports).ForEach(func(k, v []byte) error {
			var r models.Report
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			if owner, ok := owners[r.DeviceID]; ok && owner == userID {
				items = append(items, r)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteReport(id uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketReports)
		if b.Get(itob(id)) == nil {
			return ErrNotFound
		}
		return b.Delete(itob(id))
	})
}
