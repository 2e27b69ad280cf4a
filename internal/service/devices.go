package service

import (
	"errors"
	"fmt"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/store"
)

func (s *Service) AddDevice(userID uint64, name, specs string, priceUSD uint32) (*models.Device, error) {
	u, err := s.Store.GetUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !hasRole(u, models.RoleSeller) {
		return nil, fmt.Errorf("only sellers can add devices: %w", ErrForbidden)
	}

	d := models.Device{UserID: userID, Name: name, Specs: specs, PriceUSD: priceUSD}
	if err := s.Store.CreateDevice(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) DeleteDevice(userID, deviceID uint64) error {
	d, err := s.Store.GetDevice(deviceID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("device %d: %w", deviceID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !ownsDevice(d, userID) {
		return fmt.Errorf("only the owner seller can delete this device: %w", ErrForbidden)
	}
	return s.Store.DeleteDevice(deviceID)
}

func (s *Service) GetDevice(deviceID uint64) (*models.Device, error) {
	d, err := s.Store.GetDevice(deviceID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("device %d: %w", deviceID, ErrNotFound)
	}
	return d, err
}

func (s *Service) ListDevices() ([]models.Device, error) {
	return s.Store.ListDevices()
}

func (s *Service) ListUserDevices(userID uint64) ([]models.Device, error) {
	return s.Store.ListUserDevices(userID)
}
