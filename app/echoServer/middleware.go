// app/echoServer/middleware.go
package echoServer

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"bookcatalog/util/adminkey"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// AdminKey gates mutating routes behind the shared admin secret. The
// key may arrive in the x-admin-key header, the adminKey body field,
// or the adminKey query parameter, checked in that order. Failures are
// a generic 401 with no further detail.
func AdminKey(g *adminkey.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get("x-admin-key")
			if key == "" {
				key = bodyAdminKey(c)
			}
			if key == "" {
				key = c.QueryParam("adminKey")
			}
			if !g.Authorize(key) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			return next(c)
		}
	}
}

// bodyAdminKey probes the JSON body for an adminKey field and restores
// the body so a later Bind still sees it.
func bodyAdminKey(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}
	b, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(b))
	if err != nil || len(b) == 0 {
		return ""
	}
	var probe struct {
		AdminKey string `json:"adminKey"`
	}
	if json.Unmarshal(b, &probe) != nil {
		return ""
	}
	return probe.AdminKey
}
