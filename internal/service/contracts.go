package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/store"
)

// Warranty months are a fixed 30 days, no calendar awareness.
const warrantyMonth = 30 * 24 * time.Hour

func (s *Service) CreateContract(sellerID, buyerID, deviceID uint64, warrantyMonths uint32) (uint64, error) {
	d, err := s.Store.GetDevice(deviceID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, fmt.Errorf("device %d: %w", deviceID, ErrNotFound)
	}
	if err != nil {
		return 0, err
	}
	if !ownsDevice(d, sellerID) {
		return 0, fmt.Errorf("only the seller owner of the device can create a contract: %w", ErrForbidden)
	}

	expiry := s.Now().Add(time.Duration(warrantyMonths) * warrantyMonth)
	ct := models.WarrantyContract{
		SellerID:       sellerID,
		BuyerID:        buyerID,
		DeviceID:       deviceID,
		WarrantyMonths: warrantyMonths,
		ExpiryDate:     expiry.Unix(),
	}
	if err := s.Store.CreateContract(&ct); err != nil {
		return 0, err
	}
	return ct.ID, nil
}

func (s *Service) GetContract(id uint64) (*models.WarrantyContract, error) {
	ct, err := s.Store.GetContract(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("contract %d: %w", id, ErrNotFound)
	}
	return ct, err
}

func (s *Service) ListContracts() ([]models.WarrantyContract, error) {
	return s.Store.ListContracts()
}

func (s *Service) DeleteContract(id uint64) error {
	err := s.Store.DeleteContract(id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("contract %d: %w", id, ErrNotFound)
	}
	return err
}
