package service

import (
	"errors"
	"fmt"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/store"
)

func (s *Service) AddUser(name, email string, role models.Role) (uint64, error) {
	if name == "" || email == "" {
		return 0, fmt.Errorf("name and email are required: %w", ErrValidation)
	}
	if !role.Valid() {
		return 0, fmt.Errorf("unknown role %q: %w", role, ErrValidation)
	}

	u := models.User{Name: name, Email: email, Role: role}
	if err := s.Store.CreateUser(&u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *Service) GetUser(id uint64) (*models.User, error) {
	u, err := s.Store.GetUser(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return u, err
}

// UpdateUser replaces name, email and role wholesale. Only the user
// itself may update its profile. Role changes are not cross-checked
// against resources created under the previous role.
func (s *Service) UpdateUser(requesterID, targetID uint64, name, email string, role models.Role) error {
	if !isSelf(requesterID, targetID) {
		return fmt.Errorf("only the user itself can update its profile: %w", ErrForbidden)
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role %q: %w", role, ErrValidation)
	}

	u, err := s.Store.GetUser(targetID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("user %d: %w", targetID, ErrNotFound)
	}
	if err != nil {
		return err
	}

	u.Name = name
	u.Email = email
	u.Role = role
	return s.Store.PutUser(u)
}

func (s *Service) DeleteUser(requesterID, targetID uint64) error {
	if !isSelf(requesterID, targetID) {
		return fmt.Errorf("only the user itself can delete its profile: %w", ErrForbidden)
	}
	err := s.Store.DeleteUser(targetID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("user %d: %w", targetID, ErrNotFound)
	}
	return err
}
