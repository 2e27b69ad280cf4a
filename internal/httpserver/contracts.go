package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/origintrace/marketplace/internal/mykafka"
	"github.com/origintrace/marketplace/internal/service"
)

type ContractHandler struct {
	Svc      *service.Service
	Producer *mykafka.Producer
}

func (h *ContractHandler) CreateContract(c echo.Context) error {
	var req struct {
		SellerID       uint64 `json:"seller_id"`
		BuyerID        uint64 `json:"buyer_id"`
		DeviceID       uint64 `json:"device_id"`
		WarrantyMonths uint32 `json:"warranty_months"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	id, err := h.Svc.CreateContract(req.SellerID, req.BuyerID, req.DeviceID, req.WarrantyMonths)
	if err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "device_events", fmt.Sprint(req.SellerID), map[string]any{
		"type":       "contract_created",
		"contractID": id,
		"deviceID":   req.DeviceID,
	})
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

func (h *ContractHandler) GetContract(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ct, err := h.Svc.GetContract(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

func (h *ContractHandler) GetContracts(c echo.Context) error {
	items, err := h.Svc.ListContracts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ContractHandler) DeleteContract(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.Svc.DeleteContract(id); err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "device_events", fmt.Sprint(id), map[string]any{
		"type":       "contract_deleted",
		"contractID": id,
	})
	return c.NoContent(http.StatusNoContent)
}
