package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/store"
)

var testNow = time.Unix(1700000000, 0)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := New(st, nil)
	svc.Now = func() time.Time { return testNow }
	return svc
}

func addUser(t *testing.T, svc *Service, role models.Role) uint64 {
	t.Helper()
	id, err := svc.AddUser("test user", "user@example.com", role)
	require.NoError(t, err)
	return id
}

func addDevice(t *testing.T, svc *Service, sellerID uint64, specs string, price uint32) *models.Device {
	t.Helper()
	d, err := svc.AddDevice(sellerID, "test device", specs, price)
	require.NoError(t, err)
	return d
}
