package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origintrace/marketplace/internal/aigw"
	"github.com/origintrace/marketplace/internal/models"
)

func withGateway(t *testing.T, svc *Service, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc.Gateway = aigw.NewClient(srv.URL, 5*time.Second)
}

func TestCallModelMatchesStoredDevices(t *testing.T) {
	svc := newTestService(t)

	seller := addUser(t, svc, models.RoleSeller)
	wanted := addDevice(t, svc, seller, "laptop, 16GB RAM, SSD", 1200)
	addDevice(t, svc, seller, "laptop, 8GB RAM, HDD", 600)

	withGateway(t, svc, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {
			"device_type": "laptop",
			"budget_usd": 1500,
			"hard_constraints": ["SSD"],
			"soft_preferences": [],
			"must_not_have": []
		}}`))
	})

	matched, err := svc.CallModel(context.Background(), "a laptop with an SSD")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, wanted.ID, matched[0].ID)
}

func TestCallModelGatewayFailure(t *testing.T) {
	svc := newTestService(t)

	withGateway(t, svc, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	_, err := svc.CallModel(context.Background(), "anything")
	assert.ErrorIs(t, err, aigw.ErrGateway)

	// The failed call left no trace in the store.
	devices, err := svc.ListDevices()
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestProcessUserQuerySendsFewShots(t *testing.T) {
	svc := newTestService(t)

	var body map[string]any
	withGateway(t, svc, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte("raw model text"))
	})

	reply, err := svc.ProcessUserQuery(context.Background(), "recommend me a phone")
	require.NoError(t, err)
	assert.Equal(t, "raw model text", reply)
	assert.Equal(t, "recommend me a phone", body["user_message"])
	assert.Contains(t, body, "few_shot")
}

func TestExplainDevicePart(t *testing.T) {
	svc := newTestService(t)

	seller := addUser(t, svc, models.RoleSeller)
	d := addDevice(t, svc, seller, "OLED display, 120Hz", 500)

	var body map[string]any
	withGateway(t, svc, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte("the display explanation"))
	})

	reply, err := svc.ExplainDevicePart(context.Background(), d.ID, "oled")
	require.NoError(t, err)
	assert.Equal(t, "the display explanation", reply)
	// Part lookup is case-insensitive, so the prompt carries the raw specs.
	assert.Equal(t, "Explain the following part of the device: OLED display, 120Hz", body["user_message"])
}

func TestExplainDevicePartUnknownPart(t *testing.T) {
	svc := newTestService(t)

	seller := addUser(t, svc, models.RoleSeller)
	d := addDevice(t, svc, seller, "OLED display", 500)

	var body map[string]any
	withGateway(t, svc, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte("ok"))
	})

	_, err := svc.ExplainDevicePart(context.Background(), d.ID, "battery")
	require.NoError(t, err)
	assert.Equal(t,
		"Explain the following part of the device: No specific info about 'battery'. Full specs: OLED display",
		body["user_message"])
}

func TestExplainDevicePartMissingDevice(t *testing.T) {
	svc := newTestService(t)

	withGateway(t, svc, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("never called"))
	})

	_, err := svc.ExplainDevicePart(context.Background(), 42, "battery")
	assert.ErrorIs(t, err, ErrNotFound)
}
