package web

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bhr/crm-console/internal/config"
	"github.com/bhr/crm-console/internal/metrics"
	"github.com/bhr/crm-console/internal/platform"
	"github.com/bhr/crm-console/internal/web/middleware"
)

type Server struct{ e *echo.Echo }

func NewServer(cfg config.Config) *Server {
	api := platform.NewClient(cfg.Platform.BaseURL, cfg.Platform.Token, cfg.Platform.Timeout)

	h := newHandlers(
		platform.NewCustomers(api),
		platform.NewTasks(api),
		platform.NewCustomerDetails(api),
		cfg.Nav,
	)

	// echo
	e := echo.New()
	e.HideBanner = true
	e.Renderer = newRenderer()
	e.Use(echoMid.Recover(), middleware.RequestID())

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	registerRoutes(e, h)

	return &Server{e: e}
}

func registerRoutes(e *echo.Echo, h *handlers) {
	e.GET("/", h.dashboardPage)
	e.GET("/about", h.aboutPage)

	e.GET("/customer", h.customerListPage)
	e.GET("/customer/registration", h.customerRegistrationPage)
	e.POST("/customer/registration", h.registerCustomer)
	e.GET("/customer/:id", h.customerEditPage)
	e.POST("/customer/:id", h.updateCustomer)
	e.POST("/customer/:id/delete", h.deleteCustomer)

	e.POST("/customer/:id/details", h.saveNote)
	e.POST("/customer/details/:detailsId", h.updateNote)
	e.POST("/customer/details/:detailsId/delete", h.deleteNote)

	e.GET("/task", h.taskListPage)
	e.POST("/task", h.registerTask)
	e.POST("/task/:id", h.updateTask)
	e.POST("/task/:id/delete", h.deleteTask)
	e.PUT("/task/rows/:id", h.updateTaskRow)
}

func (s *Server) Start(addr string) error            { return s.e.Start(addr) }
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
