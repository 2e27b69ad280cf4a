package store

import (
	"encoding/json"

	bolt "github.com/boltdb/bolt"

	"github.com/origintrace/marketplace/internal/models"
)

// CreateUser assigns the next user id and persists the record.
func (s *Store) CreateUser(u *models.User) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		u.ID = id

		data, err := json.Marshal(u)
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
}

func (s *Store) GetUser(id uint64) (*models.User, error) {
	var u models.User
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketUsers).Get(itob(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// PutUser replaces an existing user record wholesale.
func (s *Store) PutUser(u *models.User) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		if b.Get(itob(u.ID)) == nil {
			return ErrNotFound
		}
		data, err := json.Marshal(u)
		if err != nil {
			return err
		}
		return b.Put(itob(u.ID), data)
	})
}

func (s *Store) DeleteUser(id uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		if b.Get(itob(id)) == nil {
			return ErrNotFound
		}
		return b.Delete(itob(id))
	})
}
