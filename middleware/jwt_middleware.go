// middleware/jwt_middleware.go
package middleware

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// JwtCustomClaims is the session claim carried by every authenticated
// request. IsSuperAdmin is absent from older tokens and defaults to false.
type JwtCustomClaims struct {
	UserID       string `json:"id"`
	IsAdmin      bool   `json:"isAdmin"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
	jwt.StandardClaims
}

// Valid implements the Claims interface. Tokens are issued without an
// expiry, so only tokens that explicitly carry one are checked against it.
func (c JwtCustomClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}
	return nil
}

// GetJWTSecret returns the JWT secret from environment variables
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	return secret
}

// GenerateJWT signs a session token bound to the client's id and its
// current role flags. Tokens do not expire; a role change is caught by the
// verify-token endpoint, which re-reads the stored flags.
func GenerateJWT(userID string, isAdmin, isSuperAdmin bool) (string, error) {
	claims := &JwtCustomClaims{
		UserID:       userID,
		IsAdmin:      isAdmin,
		IsSuperAdmin: isSuperAdmin,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET environment variable is required")
	}

	return token.SignedString([]byte(secret))
}

// ParseJWT validates a signed session token and returns its claims.
func ParseJWT(tokenString string) (*JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(GetJWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// TokenBlocklist answers whether a token has been revoked by logout.
type TokenBlocklist interface {
	IsBlocked(ctx context.Context, token string) (bool, error)
}

// JWTMiddleware returns a configured JWT middleware. Blocklisted tokens
// (logged-out sessions) are rejected even though their signature is valid.
// Revocation fails closed: when the blocklist cannot be queried the request
// is refused rather than let a possibly revoked token through.
func JWTMiddleware(blocklist TokenBlocklist) echo.MiddlewareFunc {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("Warning: JWT_SECRET environment variable is not set")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "JWT configuration error")
			}
		}
	}

	jwtMiddleware := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(secret),
		Claims:     &JwtCustomClaims{},
		SuccessHandler: func(c echo.Context) {
			user := c.Get("user").(*jwt.Token)
			claims := user.Claims.(*JwtCustomClaims)

			c.Set("userId", claims.UserID)
			c.Set("isAdmin", claims.IsAdmin)
			c.Set("isSuperAdmin", claims.IsSuperAdmin)
		},
		ErrorHandler: func(err error) error {
			log.Printf("JWT middleware error: %v", err)
			return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Please provide valid credentials")
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddleware(func(c echo.Context) error {
			if blocklist != nil {
				token, _ := c.Get("user").(*jwt.Token)
				if token != nil {
					blocked, err := blocklist.IsBlocked(c.Request().Context(), token.Raw)
					if err != nil {
						c.Logger().Errorf("blocklist check failed: %v", err)
						return echo.NewHTTPError(echo.ErrServiceUnavailable.Code, "Unable to verify session")
					}
					if blocked {
						return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Token has been invalidated")
					}
				}
			}
			return next(c)
		})
	}
}

// GetUserFromToken extracts the session claims set by the JWT middleware.
func GetUserFromToken(c echo.Context) *JwtCustomClaims {
	user := c.Get("user")
	if user == nil {
		return nil
	}

	token, ok := user.(*jwt.Token)
	if !ok {
		return nil
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil
	}

	return claims
}

// GetUserIDFromToken returns the authenticated subject id, or "" when the
// request carries no valid session.
func GetUserIDFromToken(c echo.Context) string {
	if userID, ok := c.Get("userId").(string); ok && userID != "" {
		return userID
	}

	claims := GetUserFromToken(c)
	if claims != nil {
		return claims.UserID
	}

	return ""
}
