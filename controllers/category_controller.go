// controllers/category_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/services"
)

// CategoryController handles category CRUD and file moves between categories.
type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// GetCategories returns every category including Other.
func (cc *CategoryController) GetCategories(c echo.Context) error {
	categories, err := cc.categories.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// CreateCategory inserts a new empty category.
func (cc *CategoryController) CreateCategory(c echo.Context) error {
	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}

	ref, err := cc.categories.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Category created",
		Data:    map[string]interface{}{"id": ref, "name": req.Name},
	})
}

// UpdateCategory renames a category.
func (cc *CategoryController) UpdateCategory(c echo.Context) error {
	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}

	if err := cc.categories.Rename(c.Request().Context(), c.Param("categoryId"), req.Name); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Category updated",
	})
}

// DeleteCategory migrates the category's files to Other and deletes it.
func (cc *CategoryController) DeleteCategory(c echo.Context) error {
	if err := cc.categories.Delete(c.Request().Context(), c.Param("categoryId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Files moved to the Other category and category deleted",
	})
}
