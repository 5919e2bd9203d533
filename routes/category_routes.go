// routes/category_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/controllers"
	"github.com/ediestyles/closet_backend/middleware"
)

// RegisterCategoryRoutes wires the category endpoints. Reading is open to any
// authenticated caller; mutations are reserved for super admins.
func RegisterCategoryRoutes(e *echo.Echo, cc *controllers.CategoryController, blocklist *middleware.SessionBlocklist) {
	categories := e.Group("/api/categories", middleware.JWTMiddleware(blocklist))

	categories.GET("", cc.GetCategories)
	categories.POST("", cc.CreateCategory, middleware.RequireSuperAdmin())
	categories.PATCH("/:categoryId", cc.UpdateCategory, middleware.RequireSuperAdmin())
	categories.DELETE("/:categoryId", cc.DeleteCategory, middleware.RequireSuperAdmin())
}
