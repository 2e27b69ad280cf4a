package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/service/match"
	"github.com/origintrace/marketplace/internal/store"
)

// CallModel turns a free-text prompt into a structured device
// specification via the AI gateway and returns the stored devices that
// satisfy it. The store is only read, and only after the external call
// has completed.
func (s *Service) CallModel(ctx context.Context, prompt string) ([]models.Device, error) {
	spec, err := s.Gateway.GenerateSpec(ctx, prompt)
	if err != nil {
		return nil, err
	}

	devices, err := s.Store.ListDevices()
	if err != nil {
		return nil, err
	}
	return match.Devices(devices, spec), nil
}

// ProcessUserQuery forwards the query to the AI gateway together with
// the few-shot examples and returns the raw model reply.
func (s *Service) ProcessUserQuery(ctx context.Context, userText string) (string, error) {
	return s.Gateway.Generate(ctx, userText, fewShots)
}

// ExplainDevicePart asks the model to explain one part of a device's
// specs. The part lookup is case-insensitive; when the part is not
// mentioned the full specs are sent with a note saying so.
func (s *Service) ExplainDevicePart(ctx context.Context, deviceID uint64, partName string) (string, error) {
	d, err := s.Store.GetDevice(deviceID)
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("device %d: %w", deviceID, ErrNotFound)
	}
	if err != nil {
		return "", err
	}

	specsText := d.Specs
	if !strings.Contains(strings.ToLower(d.Specs), strings.ToLower(partName)) {
		specsText = fmt.Sprintf("No specific info about '%s'. Full specs: %s", partName, d.Specs)
	}

	prompt := "Explain the following part of the device: " + specsText
	return s.Gateway.Generate(ctx, prompt, nil)
}
