// routes/client_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/controllers"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/repositories"
)

// RegisterClientRoutes wires the client management endpoints. Listing and
// creation are admin-only; reading a single client passes the ownership
// check.
func RegisterClientRoutes(e *echo.Echo, cc *controllers.ClientController, clients repositories.ClientStore, blocklist *middleware.SessionBlocklist) {
	group := e.Group("/api/clients", middleware.JWTMiddleware(blocklist))

	group.GET("", cc.GetClients, middleware.RequireAdmin())
	group.POST("", cc.CreateClient, middleware.RequireAdmin())
	group.GET("/:clientId", cc.GetClient, middleware.CheckPermissions(clients))
}
