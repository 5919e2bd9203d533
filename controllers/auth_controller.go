// controllers/auth_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/services"
)

// AuthController handles login, token verification, and logout.
type AuthController struct {
	auth      *services.AuthService
	blocklist *middleware.SessionBlocklist
}

func NewAuthController(auth *services.AuthService, blocklist *middleware.SessionBlocklist) *AuthController {
	return &AuthController{auth: auth, blocklist: blocklist}
}

// Authenticate exchanges a Google identity credential for a session token.
func (ac *AuthController) Authenticate(c echo.Context) error {
	var req models.AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}

	resp, err := ac.auth.Authenticate(c.Request().Context(), req.Credential, req.Audience)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Authenticated",
		Data:    resp,
	})
}

// VerifyToken re-validates a session token against the live client record.
func (ac *AuthController) VerifyToken(c echo.Context) error {
	var req models.VerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return apperr.InvalidArgument("invalid request payload")
	}
	if req.Token == "" {
		return apperr.InvalidArgument("missing token")
	}

	claim, err := middleware.ParseJWT(req.Token)
	if err != nil {
		return apperr.Unauthenticated("invalid token")
	}

	client, err := ac.auth.VerifySession(c.Request().Context(), claim)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Token is valid",
		Data:    client,
	})
}

// Logout blocklists the presented token so it can no longer be used.
func (ac *AuthController) Logout(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return apperr.Unauthenticated("missing or malformed jwt")
	}

	if err := ac.blocklist.Block(c.Request().Context(), token); err != nil {
		c.Logger().Errorf("Failed to blocklist token: %v", err)
		return apperr.Internal("error logging out")
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out",
	})
}
