package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateUserAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)

	first := models.User{Name: "a", Email: "a@example.com", Role: models.RoleSeller}
	second := models.User{Name: "b", Email: "b@example.com", Role: models.RoleBuyer}
	require.NoError(t, s.CreateUser(&first))
	require.NoError(t, s.CreateUser(&second))

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
}

func TestCountersSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := store.Open(path)
	require.NoError(t, err)

	u := models.User{Name: "a", Email: "a@example.com", Role: models.RoleSeller}
	require.NoError(t, s.CreateUser(&u))
	require.NoError(t, s.DeleteUser(u.ID))
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	// The deleted user's id must not be reissued after a restart.
	again := models.User{Name: "b", Email: "b@example.com", Role: models.RoleSeller}
	require.NoError(t, s.CreateUser(&again))
	assert.Equal(t, uint64(2), again.ID)
}

func TestCountersAreIndependentPerType(t *testing.T) {
	s := newTestStore(t)

	u := models.User{Name: "a", Email: "a@example.com", Role: models.RoleSeller}
	require.NoError(t, s.CreateUser(&u))
	require.NoError(t, s.CreateUser(&models.User{Name: "b", Email: "b@example.com", Role: models.RoleSeller}))

	d := models.Device{UserID: u.ID, Name: "d", Specs: "specs"}
	require.NoError(t, s.CreateDevice(&d))
	assert.Equal(t, uint64(1), d.ID)
}

func TestListDevicesScanOrder(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, s.CreateDevice(&models.Device{UserID: 1, Name: name}))
	}

	items, err := s.ListDevices()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetUser(42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCartRoundtrip(t *testing.T) {
	s := newTestStore(t)

	cart := models.Cart{UserID: 7, DeviceIDs: []uint64{1, 2}}
	require.NoError(t, s.PutCart(&cart))

	got, err := s.GetCart(7)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, got.DeviceIDs)

	require.NoError(t, s.DeleteCart(7))
	err = s.DeleteCart(7)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCheckoutCartSkipsMissingDevices(t *testing.T) {
	s := newTestStore(t)

	seller := models.User{Name: "s", Email: "s@example.com", Role: models.RoleSeller}
	require.NoError(t, s.CreateUser(&seller))

	var ids []uint64
	for range 3 {
		d := models.Device{UserID: seller.ID, Name: "d", Specs: "specs"}
		require.NoError(t, s.CreateDevice(&d))
		ids = append(ids, d.ID)
	}

	require.NoError(t, s.PutCart(&models.Cart{UserID: 9, DeviceIDs: ids}))

	// The middle device vanishes before checkout.
	require.NoError(t, s.DeleteDevice(ids[1]))

	now := time.Unix(1700000000, 0)
	orders, err := s.CheckoutCart(9, now)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, ids[0], orders[0].DeviceID)
	assert.Equal(t, ids[2], orders[1].DeviceID)
	for _, o := range orders {
		assert.Equal(t, uint64(9), o.BuyerID)
		assert.Equal(t, seller.ID, o.SellerID)
		assert.Equal(t, now.Unix(), o.Timestamp)
	}

	devices, err := s.ListDevices()
	require.NoError(t, err)
	assert.Empty(t, devices)

	_, err = s.GetCart(9)
	assert.ErrorIs(t, err, store.ErrNotFound)

	stored, err := s.ListOrders()
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestCheckoutCartWithoutCart(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CheckoutCart(1, time.Now())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListUserReportsJoinsDeviceOwners(t *testing.T) {
	s := newTestStore(t)

	mine := models.Device{UserID: 1, Name: "mine"}
	theirs := models.Device{UserID: 2, Name: "theirs"}
	require.NoError(t, s.CreateDevice(&mine))
	require.NoError(t, s.CreateDevice(&theirs))

	require.NoError(t, s.CreateReport(&models.Report{DeviceID: mine.ID, SpecialistName: "sp", Notes: "ok"}))
	require.NoError(t, s.CreateReport(&models.Report{DeviceID: theirs.ID, SpecialistName: "sp", Notes: "ok"}))
	// Orphaned report: its device never existed.
	require.NoError(t, s.CreateReport(&models.Report{DeviceID: 99, SpecialistName: "sp", Notes: "orphan"}))

	items, err := s.ListUserReports(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].DeviceID)
}
