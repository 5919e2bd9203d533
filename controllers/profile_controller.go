// controllers/profile_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/repositories"
)

// ProfileController handles a client's profile items.
type ProfileController struct {
	profile repositories.ProfileStore
}

func NewProfileController(profile repositories.ProfileStore) *ProfileController {
	return &ProfileController{profile: profile}
}

func (pc *ProfileController) GetItems(c echo.Context) error {
	items, err := pc.profile.ListForClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile items retrieved",
		Data:    items,
	})
}

func (pc *ProfileController) CreateItem(c echo.Context) error {
	var req models.ProfileItemRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.InvalidArgument("missing required item fields")
	}

	item := models.ProfileItem{
		ClientID:  c.Param("clientId"),
		ItemName:  req.ItemName,
		ItemType:  req.ItemType,
		ItemLink:  req.ItemLink,
		ImageLink: req.ImageLink,
		Notes:     req.Notes,
	}
	if req.Purchased != nil {
		item.Purchased = *req.Purchased
	}

	id, err := pc.profile.Insert(c.Request().Context(), item)
	if err != nil {
		return err
	}
	item.ID = id

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Profile item created",
		Data:    item,
	})
}

// UpdateItem replaces every editable field of the item.
func (pc *ProfileController) UpdateItem(c echo.Context) error {
	var req models.ProfileItemRequest
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
		"itemType":  req.ItemType,
		"itemLink":  req.ItemLink,
		"imageLink": req.ImageLink,
		"notes":     req.Notes,
		"purchased": *req.Purchased,
	}
	if err := pc.profile.Update(c.Request().Context(), c.Param("itemId"), fields); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile item updated",
	})
}

// UpdatePurchased flips only the purchased flag.
func (pc *ProfileController) UpdatePurchased(c echo.Context) error {
	var req struct {
		Purchased *bool `json:"purchased"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}
	if req.Purchased == nil {
		return apperr.InvalidArgument("missing purchased flag")
	}

	err := pc.profile.Update(c.Request().Context(), c.Param("itemId"), bson.M{"purchased": *req.Purchased})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile item updated",
	})
}

func (pc *ProfileController) DeleteItem(c echo.Context) error {
	if err := pc.profile.Delete(c.Request().Context(), c.Param("itemId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile item deleted",
	})
}
