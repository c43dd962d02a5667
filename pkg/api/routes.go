// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)

	apiGroup := e.Group("/api")
	apiGroup.POST("/generate", h.HandleGenerate)
	apiGroup.GET("/options", h.HandleOptions)
}

// NewServer builds a ready-to-start Echo instance with the API routes,
// error handler, and recovery middleware wired up.
func NewServer(version string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.Recover())

	RegisterRoutes(e, NewHandler(version))

	return e
}
