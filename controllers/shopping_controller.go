// controllers/shopping_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/repositories"
)

// ShoppingController handles a client's shopping list.
type ShoppingController struct {
	shopping repositories.ShoppingStore
}

func NewShoppingController(shopping repositories.ShoppingStore) *ShoppingController {
	return &ShoppingController{shopping: shopping}
}

func (sc *ShoppingController) GetItems(c echo.Context) error {
	items, err := sc.shopping.ListForClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Shopping items retrieved",
		Data:    items,
	})
}

func (sc *ShoppingController) CreateItem(c echo.Context) error {
	var req models.ShoppingItemRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.InvalidArgument("missing required item fields")
	}

	item := models.ShoppingItem{
		ClientID:  c.Param("clientId"),
		ItemName:  req.ItemName,
		ItemLink:  req.ItemLink,
		ImageLink: req.ImageLink,
		Notes:     req.Notes,
	}
	if req.Purchased != nil {
		item.Purchased = *req.Purchased
	}

	id, err := sc.shopping.Insert(c.Request().Context(), item)
	if err != nil {
		return err
	}
	item.ID = id

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Shopping item created",
		Data:    item,
	})
}

// UpdateItem replaces every editable field of the item.
func (sc *ShoppingController) UpdateItem(c echo.Context) error {
	var req models.ShoppingItemRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.InvalidArgument("missing required item fields")
	}
	if req.Purchased == nil {
		return apperr.InvalidArgument("missing purchased flag")
	}

	fields := bson.M{
		"itemName":  req.ItemName,
		"itemLink":  req.ItemLink,
		"imageLink": req.ImageLink,
		"notes":     req.Notes,
		"purchased": *req.Purchased,
	}
	if err := sc.shopping.Update(c.Request().Context(), c.Param("itemId"), fields); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Shopping item updated",
	})
}

// UpdatePurchased flips only the purchased flag.
func (sc *ShoppingController) UpdatePurchased(c echo.Context) error {
	var req struct {
		Purchased *bool `json:"purchased"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}
	if req.Purchased == nil {
		return apperr.InvalidArgument("missing purchased flag")
	}

	err := sc.shopping.Update(c.Request().Context(), c.Param("itemId"), bson.M{"purchased": *req.Purchased})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Shopping item updated",
	})
}

func (sc *ShoppingController) DeleteItem(c echo.Context) error {
	if err := sc.shopping.Delete(c.Request().Context(), c.Param("itemId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Shopping item deleted",
	})
}
