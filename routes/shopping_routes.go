// routes/shopping_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/controllers"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/repositories"
)

// RegisterShoppingRoutes wires the shopping-list endpoints. Writes beyond the
// purchased flag are admin-only; everything passes the ownership check.
func RegisterShoppingRoutes(e *echo.Echo, sc *controllers.ShoppingController, clients repositories.ClientStore, blocklist *middleware.SessionBlocklist) {
	shopping := e.Group("/api/shopping", middleware.JWTMiddleware(blocklist))

	check := middleware.CheckPermissions(clients)
	admin := middleware.RequireAdmin()

	shopping.POST("/:clientId", sc.CreateItem, admin, check)
	shopping.GET("/:clientId", sc.GetItems, check)
	shopping.PATCH("/:clientId/:itemId", sc.UpdateItem, admin, check)
	shopping.PATCH("/purchased/:clientId/:itemId", sc.UpdatePurchased, check)
	shopping.DELETE("/:clientId/:itemId", sc.DeleteItem, admin, check)
}
