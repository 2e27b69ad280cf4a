package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/origintrace/marketplace/internal/logging"
	"github.com/origintrace/marketplace/internal/mykafka"
	"github.com/origintrace/marketplace/internal/service"
	"github.com/origintrace/marketplace/internal/service/search"
)

type CartHandler struct {
	Svc      *service.Service
	Producer *mykafka.Producer

	// ES is optional; purchased devices leave the search index.
	ES    *elasticsearch.Client
	Index string
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
	}

	cart, err := h.Svc.GetCart(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
	}

	var req struct {
		DeviceID uint64 `json:"device_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	cart, err := h.Svc.AddToCart(userID, req.DeviceID)
	if err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(userID), map[string]any{
		"type":     "cart_item_added",
		"userID":   userID,
		"deviceID": req.DeviceID,
	})
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
	}
	deviceID, err := parseID(c, "device_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid device_id"})
	}

	cart, err := h.Svc.RemoveFromCart(userID, deviceID)
	if err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(userID), map[string]any{
		"type":     "cart_item_removed",
		"userID":   userID,
		"deviceID": deviceID,
	})
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
	}

	if err := h.Svc.ClearCart(userID); err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(userID), map[string]any{
		"type":   "cart_cleared",
		"userID": userID,
	})
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) CheckoutCart(c echo.Context) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
	}

	orders, err := h.Svc.CheckoutCart(userID)
	if err != nil {
		return respondError(c, err)
	}

	for _, o := range orders {
		h.deindexDevice(c, o.DeviceID)
	}
	publish(c, h.Producer, "order_events", fmt.Sprint(userID), map[string]any{
		"type":   "cart_checked_out",
		"userID": userID,
		"orders": orders,
	})
	return c.JSON(http.StatusOK, orders)
}

func (h *CartHandler) GetOrders(c echo.Context) error {
	items, err := h.Svc.ListOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) deindexDevice(c echo.Context, deviceID uint64) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.DeleteDevice(ctx, h.ES, h.Index, deviceID); err != nil {
		logging.FromContext(c.Request().Context()).Error("es delete error", "deviceID", deviceID, "error", err)
	}
}
