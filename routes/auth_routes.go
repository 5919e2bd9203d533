// routes/auth_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/controllers"
	"github.com/ediestyles/closet_backend/middleware"
)

// RegisterAuthRoutes wires the login, verification, and logout endpoints.
// Login and verification are public; logout needs a valid token to revoke.
func RegisterAuthRoutes(e *echo.Echo, ac *controllers.AuthController, blocklist *middleware.SessionBlocklist) {
	auth := e.Group("/api/auth")

	auth.POST("", ac.Authenticate)
	auth.POST("/verify-token", ac.VerifyToken)
	auth.POST("/logout", ac.Logout, middleware.JWTMiddleware(blocklist))
}
