package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"kotoba/backend/internal/handler"
)

const testUserID = "u1"

type routeRegistrar interface {
	RegisterRoutes(g *echo.Group)
}

// newTestServer mounts h under /api with the test user already authenticated.
func newTestServer(h routeRegistrar) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewRequestValidator()
	api := e.Group("/api", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(handler.ContextUserID, testUserID)
			return next(c)
		}
	})
	h.RegisterRoutes(api)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
