// controllers/client_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/repositories"
)

// ClientController handles client management.
type ClientController struct {
	clients repositories.ClientStore
}

func NewClientController(clients repositories.ClientStore) *ClientController {
	return &ClientController{clients: clients}
}

// GetClients lists all clients.
func (cc *ClientController) GetClients(c echo.Context) error {
	clients, err := cc.clients.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Clients retrieved",
		Data:    clients,
	})
}

// GetClient returns a single client by id.
func (cc *ClientController) GetClient(c echo.Context) error {
	client, err := cc.clients.FindByID(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Client retrieved",
		Data:    client,
	})
}

// CreateClient registers a new client.
func (cc *ClientController) CreateClient(c echo.Context) error {
	var req models.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.InvalidArgument("missing required client fields")
	}

	client := models.Client{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		IsAdmin:      req.IsAdmin,
		IsSuperAdmin: req.IsSuperAdmin,
		Credits:      req.Credits,
	}

	id, err := cc.clients.Create(c.Request().Context(), client)
	if err != nil {
		return err
	}
	client.ID = id

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Client created",
		Data:    client,
	})
}
