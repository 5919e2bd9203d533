// routes/file_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/controllers"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/repositories"
)

// RegisterFileRoutes wires the file endpoints. Every route is scoped to a
// client and passes the ownership check against that client.
func RegisterFileRoutes(e *echo.Echo, fc *controllers.FileController, clients repositories.ClientStore, blocklist *middleware.SessionBlocklist) {
	files := e.Group("/api/files", middleware.JWTMiddleware(blocklist), middleware.CheckPermissions(clients))

	files.POST("/:clientId/:categoryId", fc.CreateFile)
	files.GET("/:clientId", fc.GetFiles)
	files.PATCH("/:clientId/:categoryId/:fileId", fc.RenameFile)
	files.PATCH("/category/:clientId/:categoryId/:fileId", fc.MoveFile)
	files.DELETE("/:clientId/:categoryId/:fileId", fc.DeleteFile)
}
