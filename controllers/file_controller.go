// controllers/file_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/services"
)

// FileController handles file upload, listing, renaming, moving, and
// deletion.
type FileController struct {
	files      *services.FileService
	categories *services.CategoryService
}

func NewFileController(files *services.FileService, categories *services.CategoryService) *FileController {
	return &FileController{files: files, categories: categories}
}

// CreateFile ingests a new image for a client into a category.
func (fc *FileController) CreateFile(c echo.Context) error {
	var req models.CreateFileRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}

	claim := middleware.GetUserFromToken(c)
	file, err := fc.files.Create(c.Request().Context(), claim, c.Param("clientId"), c.Param("categoryId"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "File created",
		Data:    file,
	})
}

// GetFiles lists every file owned by the client across categories.
func (fc *FileController) GetFiles(c echo.Context) error {
	files, err := fc.files.ListForClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Files retrieved",
		Data:    files,
	})
}

// RenameFile changes a file's display name.
func (fc *FileController) RenameFile(c echo.Context) error {
	var req models.RenameFileRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}

	if err := fc.files.Rename(c.Request().Context(), c.Param("categoryId"), c.Param("fileId"), req.Name); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "File renamed",
	})
}

// MoveFile transfers a file from its current category to another.
func (fc *FileController) MoveFile(c echo.Context) error {
	var req models.MoveFileRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}

	err := fc.categories.MoveFile(c.Request().Context(), c.Param("fileId"), c.Param("categoryId"), req.NewCategoryID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "File moved",
	})
}

// DeleteFile removes a file's blobs and its record.
func (fc *FileController) DeleteFile(c echo.Context) error {
	if err := fc.files.Delete(c.Request().Context(), c.Param("categoryId"), c.Param("fileId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "File deleted",
	})
}
