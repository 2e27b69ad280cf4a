package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origintrace/marketplace/internal/models"
)

func TestAddDeviceSellerOnly(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		role models.Role
	}{
		{name: "specialist", role: models.RoleSpecialist},
		{name: "buyer", role: models.RoleBuyer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := addUser(t, svc, tt.role)
			_, err := svc.AddDevice(id, "phone", "specs", 100)
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}

	seller := addUser(t, svc, models.RoleSeller)
	d, err := svc.AddDevice(seller, "phone", "64GB, camera", 250)
	require.NoError(t, err)
	assert.Equal(t, seller, d.UserID)
	assert.Equal(t, uint32(250), d.PriceUSD)
}

func TestAddDeviceUnknownUser(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddDevice(42, "phone", "specs", 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDeviceOwnerOnly(t *testing.T) {
	svc := newTestService(t)

	owner := addUser(t, svc, models.RoleSeller)
	intruder := addUser(t, svc, models.RoleSeller)
	d := addDevice(t, svc, owner, "specs", 100)

	assert.ErrorIs(t, svc.DeleteDevice(intruder, d.ID), ErrForbidden)
	require.NoError(t, svc.DeleteDevice(owner, d.ID))

	_, err := svc.GetDevice(d.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUserDevices(t *testing.T) {
	svc := newTestService(t)

	first := addUser(t, svc, models.RoleSeller)
	second := addUser(t, svc, models.RoleSeller)
	addDevice(t, svc, first, "a", 1)
	addDevice(t, svc, second, "b", 1)
	addDevice(t, svc, first, "c", 1)

	items, err := svc.ListUserDevices(first)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	all, err := svc.ListDevices()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
