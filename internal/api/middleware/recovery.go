package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace, and answers with the same problem+json shape huma uses for errors.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)

					log.Error("panic recovered",
						"error", fmt.Sprint(r),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"request_id", c.Get("request_id"),
						"stack", string(buf[:n]),
					)

					c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
					err = c.JSON(http.StatusInternalServerError, &huma.ErrorModel{
						Title:  http.StatusText(http.StatusInternalServerError),
						Status: http.StatusInternalServerError,
						Detail: "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}
