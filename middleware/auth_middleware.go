// middleware/auth_middleware.go
package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/repositories"
)

// Decide is the permission decision engine: it checks whether the acting
// session may operate on resources owned by the target client. Rules are
// ordered and the first match wins; it is pure and has no side effects.
func Decide(claim *JwtCustomClaims, target *models.Client) error {
	if claim == nil {
		return apperr.Unauthenticated("no session claim")
	}

	// Super admins bypass all ownership checks.
	if claim.IsSuperAdmin {
		return nil
	}

	isSelf := claim.UserID == target.ID.Hex()

	if claim.IsAdmin {
		if target.IsSuperAdmin {
			return apperr.Forbidden("admins have no permissions over super admins")
		}
		if target.IsAdmin && !isSelf {
			return apperr.Forbidden("admins have no permissions over other admins")
		}
		return nil
	}

	if target.IsAdmin || target.IsSuperAdmin {
		return apperr.Forbidden("non-admins have no permissions over any admins")
	}
	if !isSelf {
		return apperr.Forbidden("non-admins only have permissions over themselves")
	}
	return nil
}

// CheckPermissions resolves the :clientId route param to a client record and
// runs the decision engine against it. A malformed id is an input error, not
// a permission decision; an unknown id is NotFound.
func CheckPermissions(clients repositories.ClientStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := c.Param("clientId")

			target, err := clients.FindByID(c.Request().Context(), clientID)
			if err != nil {
				return err
			}

			claims := GetUserFromToken(c)
			if err := Decide(claims, target); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// RequireAdmin allows only sessions holding the admin flag, regardless of
// the target resource.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetUserFromToken(c)
			if claims == nil || !claims.IsAdmin {
				return apperr.Unauthenticated("only admins are authorized for this action")
			}
			return next(c)
		}
	}
}

// RequireSuperAdmin allows only sessions holding the super admin flag.
func RequireSuperAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetUserFromToken(c)
			if claims == nil || !claims.IsSuperAdmin {
				return apperr.Unauthenticated("only super admins are authorized for this action")
			}
			return next(c)
		}
	}
}
