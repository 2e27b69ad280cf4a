package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/origintrace/marketplace/internal/logging"
	"github.com/origintrace/marketplace/internal/mykafka"
	"github.com/origintrace/marketplace/internal/service"
	"github.com/origintrace/marketplace/internal/service/search"
	"github.com/origintrace/marketplace/internal/util"
)

type DeviceHandler struct {
	Svc      *service.Service
	Producer *mykafka.Producer

	// ES is optional; when nil the search index is skipped entirely.
	ES    *elasticsearch.Client
	Index string
}

func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	var req struct {
		UserID   uint64 `json:"user_id"`
		Name     string `json:"name"`
		Specs    string `json:"specs"`
		PriceUSD uint32 `json:"price_usd"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	d, err := h.Svc.AddDevice(req.UserID, req.Name, req.Specs, req.PriceUSD)
	if err != nil {
		return respondError(c, err)
	}

	h.indexDevice(c, d.ID)
	publish(c, h.Producer, "device_events", fmt.Sprint(req.UserID), map[string]any{
		"type":     "device_created",
		"deviceID": d.ID,
		"userID":   req.UserID,
	})
	return c.JSON(http.StatusCreated, d)
}

func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	userID, err := queryID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id required"})
	}

	if err := h.Svc.DeleteDevice(userID, id); err != nil {
		return respondError(c, err)
	}

	h.deindexDevice(c, id)
	publish(c, h.Producer, "device_events", fmt.Sprint(userID), map[string]any{
		"type":     "device_deleted",
		"deviceID": id,
	})
	return c.NoContent(http.StatusNoContent)
}

func (h *DeviceHandler) GetDevice(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	d, err := h.Svc.GetDevice(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DeviceHandler) GetDevices(c echo.Context) error {
	items, err := h.Svc.ListDevices()
	if err != nil {
		return respondError(c, err)
	}

	// Unpaged by default; page/size narrow the window when provided.
	if c.QueryParam("page") != "" || c.QueryParam("size") != "" {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		size, _ := strconv.Atoi(c.QueryParam("size"))
		from, limit := util.Calculate(page, size)
		if from > len(items) {
			from = len(items)
		}
		end := from + limit
		if end > len(items) {
			end = len(items)
		}
		items = items[from:end]
	}
	return c.JSON(http.StatusOK, items)
}

func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	items, err := h.Svc.ListUserDevices(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *DeviceHandler) indexDevice(c echo.Context, deviceID uint64) {
	if h.ES == nil {
		return
	}
	d, err := h.Svc.GetDevice(deviceID)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexDevice(ctx, h.ES, h.Index, d); err != nil {
		logging.FromContext(c.Request().Context()).Error("es index error", "deviceID", deviceID, "error", err)
	}
}

func (h *DeviceHandler) deindexDevice(c echo.Context, deviceID uint64) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.DeleteDevice(ctx, h.ES, h.Index, deviceID); err != nil {
		logging.FromContext(c.Request().Context()).Error("es delete error", "deviceID", deviceID, "error", err)
	}
}
