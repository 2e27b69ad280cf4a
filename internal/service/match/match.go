// Package match filters stored devices against a structured device
// specification. Matching is plain substring search over the specs
// text; callers that want a smarter scheme can swap this package
// without touching the operations that use it.
package match

import (
	"strings"

	"github.com/origintrace/marketplace/internal/models"
)

// Spec is the structured device specification produced by the
// recommendation service.
type Spec struct {
	DeviceType      string   `json:"device_type"`
	PrimaryUse      string   `json:"primary_use"`
	BudgetUSD       uint32   `json:"budget_usd"`
	HardConstraints []string `json:"hard_constraints"`
	SoftPreferences []string `json:"soft_preferences"`
	MustNotHave     []string `json:"must_not_have"`
}

// Devices returns the devices satisfying the spec, in the order given.
// A device qualifies when its specs text contains the device type, its
// price fits the budget, every hard constraint appears in the specs and
// none of the must-not-have strings do. Soft preferences are
// informational only and never affect inclusion or order.
func Devices(devices []models.Device, spec Spec) []models.Device {
	matched := []models.Device{}
	for _, d := range devices {
		if qualifies(d, spec) {
			matched = append(matched, d)
		}
	}
	return matched
}

func qualifies(d models.Device, spec Spec) bool {
	if !strings.Contains(d.Specs, spec.DeviceType) {
		return false
	}
	if d.PriceUSD > spec.BudgetUSD {
		return false
	}
	for _, constraint := range spec.HardConstraints {
		if !strings.Contains(d.Specs, constraint) {
			return false
		}
	}
	for _, forbidden := range spec.MustNotHave {
		if strings.Contains(d.Specs, forbidden) {
			return false
		}
	}
	return true
}
