package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/config"
	"github.com/ediestyles/closet_backend/controllers"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/repositories"
	"github.com/ediestyles/closet_backend/routes"
	"github.com/ediestyles/closet_backend/services"
	"github.com/ediestyles/closet_backend/utils"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	env := config.Env()

	// Connect to Redis (session blocklist; optional)
	rdb := config.ConnectRedis()
	blocklist := middleware.NewSessionBlocklist(rdb)

	// Connect to database and object storage
	client := config.ConnectDB()
	db := client.Database(config.DatabaseName())
	bucket := config.ConnectStorage()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())

	e.HTTPErrorHandler = errorHandler

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Closet Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	e.Use(httpsRedirect())

	// Initialize repositories
	clientRepo := repositories.NewClientRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	shoppingRepo := repositories.NewShoppingRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	// Initialize services
	blobStore := utils.NewGCSBlobStore(bucket, config.BucketName(env))
	authService := services.NewAuthService(clientRepo, services.GoogleIdentityVerifier{})
	categoryService := services.NewCategoryService(categoryRepo)
	fileService := services.NewFileService(clientRepo, categoryRepo, blobStore, services.NewPhotoroomService(), config.BlobKeyPrefix(env))

	// Initialize controllers
	authController := controllers.NewAuthController(authService, blocklist)
	clientController := controllers.NewClientController(clientRepo)
	categoryController := controllers.NewCategoryController(categoryService)
	fileController := controllers.NewFileController(fileService, categoryService)
	shoppingController := controllers.NewShoppingController(shoppingRepo)
	profileController := controllers.NewProfileController(profileRepo)

	// Register routes
	routes.RegisterAuthRoutes(e, authController, blocklist)
	routes.RegisterClientRoutes(e, clientController, clientRepo, blocklist)
	routes.RegisterCategoryRoutes(e, categoryController, blocklist)
	routes.RegisterFileRoutes(e, fileController, clientRepo, blocklist)
	routes.RegisterShoppingRoutes(e, shoppingController, clientRepo, blocklist)
	routes.RegisterProfileRoutes(e, profileController, clientRepo, blocklist)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

// errorHandler maps workflow errors onto the response envelope.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch e := err.(type) {
	case *apperr.Error:
		status = e.HTTPStatus()
		message = e.Message
	case *echo.HTTPError:
		status = e.Code
		if msg, ok := e.Message.(string); ok {
			message = msg
		}
	default:
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, models.Response{Status: status, Message: message})
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(301, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}
