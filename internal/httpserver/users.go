package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/origintrace/marketplace/internal/models"
	"github.com/origintrace/marketplace/internal/mykafka"
	"github.com/origintrace/marketplace/internal/service"
)

type UserHandler struct {
	Svc      *service.Service
	Producer *mykafka.Producer
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req struct {
		Name  string      `json:"name"`
		Email string      `json:"email"`
		Role  models.Role `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	id, err := h.Svc.AddUser(req.Name, req.Email, req.Role)
	if err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(id), map[string]any{
		"type":   "user_created",
		"userID": id,
		"role":   req.Role,
	})
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	u, err := h.Svc.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		RequesterID uint64      `json:"requester_id"`
		Name        string      `json:"name"`
		Email       string      `json:"email"`
		Role        models.Role `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.Svc.UpdateUser(req.RequesterID, id, req.Name, req.Email, req.Role); err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(id), map[string]any{
		"type":   "user_updated",
		"userID": id,
	})
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	requesterID, err := queryID(c, "requester_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "requester_id required"})
	}

	if err := h.Svc.DeleteUser(requesterID, id); err != nil {
		return respondError(c, err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(id), map[string]any{
		"type":   "user_deleted",
		"userID": id,
	})
	return c.NoContent(http.StatusNoContent)
}
