package web

import (
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bhr/crm-console/internal/config"
	"github.com/bhr/crm-console/internal/logger"
	"github.com/bhr/crm-console/internal/platform"
	"github.com/bhr/crm-console/internal/web/middleware"
)

const msgNameRequired = "A keresztnevet vagy a becenevet meg kell adni!"

type handlers struct {
	customers *platform.Customers
	tasks     *platform.Tasks
	details   *platform.CustomerDetails
	nav       []config.NavItem
}

func newHandlers(customers *platform.Customers, tasks *platform.Tasks, details *platform.CustomerDetails, nav []config.NavItem) *handlers {
	return &handlers{customers: customers, tasks: tasks, details: details, nav: nav}
}

// page holds what every template needs: the sidebar, the active item and
// an optional failure message for re-rendering.
type page struct {
	Title  string
	Active string
	Nav    []config.NavItem
	Error  string
}

func (h *handlers) page(active, title string) page {
	return page{Title: title, Active: active, Nav: h.nav}
}

func (h *handlers) dashboardPage(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard.html", h.page("dashboard", "Kezdőoldal"))
}

func (h *handlers) aboutPage(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", h.page("about", "Rólunk"))
}

// logServerError records the full failure detail; only a generic message
// reaches the operator.
func (h *handlers) logServerError(c echo.Context, op string, err error) {
	logger.L().Error("platform call failed",
		zap.String("op", op),
		zap.String("request_id", middleware.RequestIDFromCtx(c)),
		zap.Error(err),
	)
}

// statusFor maps a classified outcome to the page response status.
func statusFor[T any](r platform.Result[T]) int {
	switch r.Outcome {
	case platform.Success:
		return http.StatusOK
	case platform.DomainError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func optString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// formTime accepts the instant formats browsers submit: RFC 3339,
// datetime-local and a bare date. Empty or unparseable input means unset.
func formTime(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
