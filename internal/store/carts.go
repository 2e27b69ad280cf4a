package store

import (
	"encoding/json"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/origintrace/marketplace/internal/models"
)

func (s *Store) GetCart(userID uint64) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketCarts).Get(itob(userID))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// PutCart stores the cart under its owner's id, creating or replacing it.
func (s *Store) PutCart(cart *models.Cart) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(cart)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketCarts).Put(itob(cart.UserID), data)
	})
}

func (s *Store) DeleteCart(userID uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCarts)
		if b.Get(itob(userID)) == nil {
			return ErrNotFound
		}
		return b.Delete(itob(userID))
	})
}

// CheckoutCart converts the buyer's cart into orders inside a single
// write transaction. Devices are processed in cart order: each one still
// present is removed from the device bucket and an order is created for
// it; devices already gone are skipped. The cart itself is deleted
// whether or not any order was created. Returns ErrNotFound when the
// buyer has no cart.
func (s *Store) CheckoutCart(buyerID uint64, now time.Time) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.Update(func(tx *bolt.Tx) error {
		cb := tx.Bucket(bucketCarts)
		raw := cb.Get(itob(buyerID))
		if raw == nil {
			return ErrNotFound
		}
		var cart models.Cart
		if err := json.Unmarshal(raw, &cart); err != nil {
			return err
		}

		db := tx.Bucket(bucketDevices)
		ob := tx.Bucket(bucketOrders)
		for _, deviceID := range cart.DeviceIDs {
			v := db.Get(itob(deviceID))
			if v == nil {
				// Deleted or purchased since it was added to the cart.
				continue
			}
			var dev models.Device
			if err := json.Unmarshal(v, &dev); err != nil {
				return err
			}
			if err := db.Delete(itob(deviceID)); err != nil {
				return err
			}

			id, err := ob.NextSequence()
			if err != nil {
				return err
			}
			order := models.Order{
				ID:        id,
				BuyerID:   buyerID,
				SellerID:  dev.UserID,
				DeviceID:  dev.ID,
				Timestamp: now.Unix(),
			}
			data, err := json.Marshal(order)
			if err != nil {
				return err
			}
			if err := ob.Put(itob(id), data); err != nil {
				return err
			}
			orders = append(orders, order)
		}

		return cb.Delete(itob(buyerID))
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}
