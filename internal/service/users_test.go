package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origintrace/marketplace/internal/models"
)

func TestAddUserRoundtrip(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.AddUser("Rawan", "rawan@example.com", models.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	u, err := svc.GetUser(id)
	require.NoError(t, err)
	assert.Equal(t, "Rawan", u.Name)
	assert.Equal(t, "rawan@example.com", u.Email)
	assert.Equal(t, models.RoleSeller, u.Role)
	assert.Equal(t, id, u.ID)
}

func TestAddUserValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		uname string
		email string
		role  models.Role
	}{
		{name: "empty name", uname: "", email: "a@example.com", role: models.RoleBuyer},
		{name: "empty email", uname: "a", email: "", role: models.RoleBuyer},
		{name: "unknown role", uname: "a", email: "a@example.com", role: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddUser(tt.uname, tt.email, tt.role)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateUserSelfOnly(t *testing.T) {
	svc := newTestService(t)

	id := addUser(t, svc, models.RoleSeller)
	other := addUser(t, svc, models.RoleBuyer)

	err := svc.UpdateUser(other, id, "x", "x@example.com", models.RoleSeller)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.UpdateUser(id, id, "new name", "new@example.com", models.RoleBuyer))

	u, err := svc.GetUser(id)
	require.NoError(t, err)
	assert.Equal(t, "new name", u.Name)
	assert.Equal(t, "new@example.com", u.Email)
	// Role changes take effect with no cross-check against devices
	// created under the old role.
	assert.Equal(t, models.RoleBuyer, u.Role)
}

func TestUpdateUserMissing(t *testing.T) {
	svc := newTestService(t)
	err := svc.UpdateUser(42, 42, "x", "x@example.com", models.RoleBuyer)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUserSelfOnly(t *testing.T) {
	svc := newTestService(t)

	id := addUser(t, svc, models.RoleSeller)
	other := addUser(t, svc, models.RoleBuyer)

	assert.ErrorIs(t, svc.DeleteUser(other, id), ErrForbidden)
	require.NoError(t, svc.DeleteUser(id, id))

	_, err := svc.GetUser(id)
	assert.ErrorIs(t, err, ErrNotFound)
}
