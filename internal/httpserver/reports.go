package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/origintrace/marketplace/internal/mykafka"
	"github.com/origintrace/marketplace/internal/service"
)

type ReportHandler struct {
	Svc      *service.Service
	Producer *mykafka.Producer
}

func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req struct {
		UserID         uint64 `json:"user_id"`
		DeviceID       uint64 `json:"device_id"`
		SpecialistName string `json:"specialist_name"`
		Notes          string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	id, err := h.Svc.AddReport(req.UserID, req.DeviceID, req.SpecialistName, req.Notes)
	if err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "device_events", fmt.Sprint(req.DeviceID), map[string]any{
		"type":     "report_created",
		"reportID": id,
		"deviceID": req.DeviceID,
	})
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	r, err := h.Svc.GetReport(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *ReportHandler) GetReports(c echo.Context) error {
	items, err := h.Svc.ListReports()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ReportHandler) GetDeviceReports(c echo.Context) error {
	deviceID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	items, err := h.Svc.ListDeviceReports(deviceID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ReportHandler) GetUserReports(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	items, err := h.Svc.ListUserReports(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ReportHandler) DeleteReport(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	userID, err := queryID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id required"})
	}

	if err := h.Svc.DeleteReport(userID, id); err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "device_events", fmt.Sprint(id), map[string]any{
		"type":     "report_deleted",
		"reportID": id,
	})
	return c.NoContent(http.StatusNoContent)
}
