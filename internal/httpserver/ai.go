package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/origintrace/marketplace/internal/service"
)

type AIHandler struct {
	Svc *service.Service
}

// Recommend turns a free-text query into a structured specification via
// the AI gateway and returns the matching stored devices.
func (h *AIHandler) Recommend(c echo.Context) error {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	devices, err := h.Svc.CallModel(c.Request().Context(), req.Query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, devices)
}

// Query forwards free text to the model, few-shot examples attached,
// and returns the raw reply.
func (h *AIHandler) Query(c echo.Context) error {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	reply, err := h.Svc.ProcessUserQuery(c.Request().Context(), req.Query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"response": reply})
}

func (h *AIHandler) Explain(c echo.Context) error {
	var req struct {
		DeviceID uint64 `json:"device_id"`
		PartName string `json:"part_name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	explanation, err := h.Svc.ExplainDevicePart(c.Request().Context(), req.DeviceID, req.PartName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"explanation": explanation})
}
