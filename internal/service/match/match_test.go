package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/origintrace/marketplace/internal/models"
)

func TestDevices(t *testing.T) {
	devices := []models.Device{
		{ID: 1, Specs: "laptop, 16GB RAM, SSD", PriceUSD: 1200},
		{ID: 2, Specs: "laptop, 8GB RAM, HDD", PriceUSD: 600},
		{ID: 3, Specs: "laptop, 16GB RAM, SSD", PriceUSD: 2000},
		{ID: 4, Specs: "phone, 16GB RAM, SSD", PriceUSD: 900},
		{ID: 5, Specs: "laptop, 16GB RAM, SSD, refurbished", PriceUSD: 1100},
	}

	spec := Spec{
		DeviceType:      "laptop",
		BudgetUSD:       1500,
		HardConstraints: []string{"16GB RAM", "SSD"},
		SoftPreferences: []string{"lightweight"},
		MustNotHave:     []string{"refurbished"},
	}

	matched := Devices(devices, spec)

	// 2 misses a hard constraint, 3 exceeds the budget, 4 is the wrong
	// type and 5 fails solely on must_not_have.
	if assert.Len(t, matched, 1) {
		assert.Equal(t, uint64(1), matched[0].ID)
	}
}

func TestDevicesPreservesScanOrder(t *testing.T) {
	devices := []models.Device{
		{ID: 3, Specs: "tablet", PriceUSD: 100},
		{ID: 1, Specs: "tablet", PriceUSD: 100},
		{ID: 2, Specs: "tablet", PriceUSD: 100},
	}

	matched := Devices(devices, Spec{DeviceType: "tablet", BudgetUSD: 100})
	ids := []uint64{matched[0].ID, matched[1].ID, matched[2].ID}
	assert.Equal(t, []uint64{3, 1, 2}, ids)
}

func TestDevicesCaseSensitive(t *testing.T) {
	devices := []models.Device{
		{ID: 1, Specs: "Laptop, SSD", PriceUSD: 100},
	}

	matched := Devices(devices, Spec{DeviceType: "laptop", BudgetUSD: 500})
	assert.Empty(t, matched)
}

func TestDevicesBudgetBoundary(t *testing.T) {
	devices := []models.Device{
		{ID: 1, Specs: "phone", PriceUSD: 300},
		{ID: 2, Specs: "phone", PriceUSD: 301},
	}

	matched := Devices(devices, Spec{DeviceType: "phone", BudgetUSD: 300})
	if assert.Len(t, matched, 1) {
		assert.Equal(t, uint64(1), matched[0].ID)
	}
}

func TestDevicesSoftPreferencesIgnored(t *testing.T) {
	devices := []models.Device{
		{ID: 1, Specs: "phone", PriceUSD: 100},
	}

	matched := Devices(devices, Spec{
		DeviceType:      "phone",
		BudgetUSD:       200,
		SoftPreferences: []string{"never mentioned anywhere"},
	})
	assert.Len(t, matched, 1)
}
