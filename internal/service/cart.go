package service

import (
	"errors"
	"fmt"
	"slices"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/store"
)

// AddToCart puts a device into the buyer's cart, creating the cart on
// first use. Adding a device already in the cart is a no-op.
func (s *Service) AddToCart(userID, deviceID uint64) (*models.Cart, error) {
	u, err := s.Store.GetUser(userID)
	if err != nil || !hasRole(u, models.RoleBuyer) {
		return nil, fmt.Errorf("only buyers can use the cart: %w", ErrForbidden)
	}

	if _, err := s.Store.GetDevice(deviceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("device %d: %w", deviceID, ErrNotFound)
		}
		return nil, err
	}

	cart, err := s.Store.GetCart(userID)
	if errors.Is(err, store.ErrNotFound) {
		cart = &models.Cart{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	if !slices.Contains(cart.DeviceIDs, deviceID) {
		cart.DeviceIDs = append(cart.DeviceIDs, deviceID)
	}
	if err := s.Store.PutCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart drops the device from the cart. Removing a device that
// was never added is not an error.
func (s *Service) RemoveFromCart(userID, deviceID uint64) (*models.Cart, error) {
	cart, err := s.Store.GetCart(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("cart for user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	cart.DeviceIDs = slices.DeleteFunc(cart.DeviceIDs, func(id uint64) bool {
		return id == deviceID
	})
	if err := s.Store.PutCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) ClearCart(userID uint64) error {
	err := s.Store.DeleteCart(userID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("cart for user %d: %w", userID, ErrNotFound)
	}
	return err
}

func (s *Service) GetCart(userID uint64) (*models.Cart, error) {
	cart, err := s.Store.GetCart(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("cart for user %d: %w", userID, ErrNotFound)
	}
	return cart, err
}

// CheckoutCart turns the cart into orders. Devices that disappeared
// since they were added are skipped, so a checkout can legitimately
// produce zero orders; a missing cart is the only error case.
func (s *Service) CheckoutCart(userID uint64) ([]models.Order, error) {
	orders, err := s.Store.CheckoutCart(userID, s.Now())
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("cart for user %d: %w", userID, ErrNotFound)
	}
	return orders, err
}

func (s *Service) ListOrders() ([]models.Order, error) {
	return s.Store.ListOrders()
}
