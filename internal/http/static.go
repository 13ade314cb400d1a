package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"kotoba/backend/internal/logger"
)

// registerStatic serves the single-page frontend from dir. Unknown paths fall
// back to index.html so client-side routes survive a reload.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	if info, err := os.Stat(indexPath); err != nil || info.IsDir() {
		logger.Warn("frontend index missing", "module", "http", "action", "start", "resource", "static", "result", "skipped", "path", indexPath)
		return
	}
	logger.Info("frontend enabled", "module", "http", "action", "start", "resource", "static", "result", "ok", "dir", dir)

	files := nethttp.FileServer(nethttp.Dir(dir))
	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if isReservedPath(requestPath) {
			return echo.ErrNotFound
		}

		name := strings.TrimPrefix(path.Clean(requestPath), "/")
		if name != "" && name != "." {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
				files.ServeHTTP(c.Response(), c.Request())
				return nil
			}
		}
		return c.File(indexPath)
	})
}

func isReservedPath(p string) bool {
	for _, prefix := range []string{"/api", "/swagger"} {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}
