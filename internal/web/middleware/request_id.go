package middleware

import (
	echo "github.com/labstack/echo/v4"

	"github.com/bhr/crm-console/internal/util"
)

const ctxRequestID = "request_id"

// RequestIDFromCtx extracts the id set by RequestID.
func RequestIDFromCtx(c echo.Context) string {
	v, _ := c.Get(ctxRequestID).(string)
	return v
}

// RequestID tags every inbound request with a ULID, stored in context and
// echoed in the X-Request-Id response header so page failures can be
// matched to log lines.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := util.NewRequestID()
			c.Set(ctxRequestID, id)
			c.Response().Header().Set("X-Request-Id", id)
			return next(c)
		}
	}
}
