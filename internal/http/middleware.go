package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"kotoba/backend/internal/handler"
	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/service"
)

// RequestLoggerMiddleware logs every request once it has been handled.
// Server errors log at error level, client errors at warn, the rest at debug.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			args := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			}
			if userID, ok := c.Get(handler.ContextUserID).(string); ok && userID != "" {
				args = append(args, "user_id", userID)
			}

			switch {
			case status >= 500:
				logger.Error("http request", args...)
			case status >= 400:
				logger.Warn("http request", args...)
			default:
				logger.Debug("http request", args...)
			}
			return nil
		}
	}
}

// JWTAuthMiddleware validates the session token and stores the user id on the
// context under handler.ContextUserID. The token is read from a bearer
// Authorization header first, then from the auth cookie.
func JWTAuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				if cookie, err := c.Cookie(handler.AuthCookieName); err == nil {
					token = cookie.Value
				}
			}

			if token == "" {
				logAuthFailure(c, "auth missing")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "missing authentication",
				})
			}

			userID, err := authService.ValidateToken(token)
			if err != nil || userID == "" {
				logAuthFailure(c, "auth invalid")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid token",
				})
			}

			c.Set(handler.ContextUserID, userID)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func logAuthFailure(c echo.Context, msg string) {
	logger.Warn(msg,
		"module", "http",
		"action", "request",
		"resource", "auth",
		"result", "failed",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"remote_ip", c.RealIP(),
	)
}
