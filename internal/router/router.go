package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"emlak/internal/config"
	apperrors "emlak/internal/errors"
	"emlak/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	adminPropertyHandler *handler.AdminPropertyHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.GET("/properties", propertyHandler.ListProperties)
	api.GET("/properties/:id", propertyHandler.GetProperty)

	// Admin routes (require JWT authentication). The middleware rejects
	// before any handler or store access runs. Missing and invalid tokens
	// differ only in message text, never in status code.
	admin := api.Group("/admin", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ErrorHandler: func(c echo.Context, err error) error {
			msg := "invalid or expired token"
			if errors.Is(err, echojwt.ErrJWTMissing) {
				msg = "missing token"
			}
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: msg,
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	admin.POST("/properties", adminPropertyHandler.CreateProperty)
	admin.PUT("/properties/:id", adminPropertyHandler.UpdateProperty)
	admin.DELETE("/properties/:id", adminPropertyHandler.DeleteProperty)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
