package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// serviceErrors maps service sentinels to the status and message clients see.
var serviceErrors = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrInvalid, http.StatusBadRequest, "invalid request"},
	{service.ErrNotFound, http.StatusNotFound, "resource not found"},
	{service.ErrAIUnavailable, http.StatusServiceUnavailable, "AI provider not configured"},
}

// writeServiceError answers with the mapped status, or 500 for anything unknown.
func writeServiceError(c echo.Context, err error) error {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return Error(c, m.status, m.message)
		}
	}
	logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed",
		"path", c.Request().URL.Path, "error", err)
	return Error(c, http.StatusInternalServerError, "internal error")
}

func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
