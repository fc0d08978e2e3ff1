package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/app"
)

// NewServer assembles the echo instance with middleware and routes.
func NewServer(svc *app.OracleService, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))

	NewHandler(svc, logger).Register(e)
	return e
}
