package service

import (
	"errors"
	"fmt"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/store"
)

func (s *Service) AddReport(userID, deviceID uint64, specialistName, notes string) (uint64, error) {
	u, err := s.Store.GetUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return 0, err
	}
	if !hasRole(u, models.RoleSpecialist) {
		return 0, fmt.Errorf("only specialists can add reports: %w", ErrForbidden)
	}

	if _, err := s.Store.GetDevice(deviceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, fmt.Errorf("device %d: %w", deviceID, ErrNotFound)
		}
		return 0, err
	}

	r := models.Report{
		DeviceID:       deviceID,
		SpecialistName: specialistName,
		Notes:          notes,
		Timestamp:      s.Now().Unix(),
	}
	if err := s.Store.CreateReport(&r); err != nil {
		return 0, err
	}
	return r.ID, nil
}

func (s *Service) GetReport(id uint64) (*models.Report, error) {
	r, err := s.Store.GetReport(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("report %d: %w", id, ErrNotFound)
	}
	return r, err
}

func (s *Service) ListReports() ([]models.Report, error) {
	return s.Store.ListReports()
}

func (s *Service) ListDeviceReports(deviceID uint64) ([]models.Report, error) {
	return s.Store.ListDeviceReports(deviceID)
}

// ListUserReports returns reports filed against the user's devices. A
// report whose device has since been deleted does not appear here; the
// reference is weak and never cascades.
func (s *Service) ListUserReports(userID uint64) ([]models.Report, error) {
	return s.Store.ListUserReports(userID)
}

// DeleteReport may be performed by any specialist or by the owner of
// the reported device.
func (s *Service) DeleteReport(userID, reportID uint64) error {
	r, err := s.Store.GetReport(reportID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("report %d: %w", reportID, ErrNotFound)
	}
	if err != nil {
		return err
	}

	d, err := s.Store.GetDevice(r.DeviceID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("device %d: %w", r.DeviceID, ErrNotFound)
	}
	if err != nil {
		return err
	}

	u, err := s.Store.GetUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return err
	}

	if !mayDeleteReport(u, d) {
		return fmt.Errorf("only the specialist or seller owner can delete this report: %w", ErrForbidden)
	}
	return s.Store.DeleteReport(reportID)
}
