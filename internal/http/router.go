package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "kotoba/backend/docs"
	"kotoba/backend/internal/handler"
	"kotoba/backend/internal/service"
)

func NewRouter(
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	translationHandler *handler.TranslationHandler,
	summaryHandler *handler.SummaryHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	authHandler.RegisterPublicRoutes(api)

	protected := api.Group("", JWTAuthMiddleware(authService))
	authHandler.RegisterProtectedRoutes(protected)
	translationHandler.RegisterRoutes(protected)
	summaryHandler.RegisterRoutes(protected)

	registerStatic(e, staticDir)

	return e
}
