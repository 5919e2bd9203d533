// routes/profile_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/controllers"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/repositories"
)

// RegisterProfileRoutes wires the profile-item endpoints with the same gate
// composition as the shopping list.
func RegisterProfileRoutes(e *echo.Echo, pc *controllers.ProfileController, clients repositories.ClientStore, blocklist *middleware.SessionBlocklist) {
	profile := e.Group("/api/profile", middleware.JWTMiddleware(blocklist))

	check := middleware.CheckPermissions(clients)
	admin := middleware.RequireAdmin()

	profile.POST("/:clientId", pc.CreateItem, admin, check)
	profile.GET("/:clientId", pc.GetItems, check)
	profile.PATCH("/:clientId/:itemId", pc.UpdateItem, admin, check)
	profile.PATCH("/purchased/:clientId/:itemId", pc.UpdatePurchased, check)
	profile.DELETE("/:clientId/:itemId", pc.DeleteItem, admin, check)
}
