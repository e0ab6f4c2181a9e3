// Package server exposes the Campus Compass API over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"

	"github.com/campuscompass/compass/internal/auth"
	"github.com/campuscompass/compass/internal/storage"
)

// Options configures a Server.
type Options struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
	Debug         bool
}

// Server wires the API routes, middleware and collaborators together.
type Server struct {
	app           *echo.Echo
	store         storage.Store
	authenticator auth.Authenticator
	jwt           *auth.JWTManager
}

// New builds a fully routed server.
func New(opts Options) *Server {
	s := &Server{
		app:           echo.New(),
		store:         opts.Store,
		authenticator: opts.Authenticator,
		jwt:           opts.JWT,
	}
	s.app.HideBanner = true
	s.app.Debug = opts.Debug
	s.app.Validator = newValidator()
	s.app.HTTPErrorHandler = httpErrorHandler

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(requestLogger)
	s.app.Use(metricsMiddleware)
	if !opts.Debug {
		s.app.Use(middleware.Recover())
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	s.app.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.app.Group("/v1")

	// un-authed endpoints
	v1.POST("/auth/register", s.register)
	v1.POST("/auth/login", s.login)

	// authed endpoints
	authed := v1.Group("", s.requireAuth)
	authed.GET("/auth/me", s.currentUser)
	authed.GET("/users", s.listUsers)

	authed.POST("/splits", s.createSplit)
	authed.GET("/splits", s.ledgerView)
	authed.GET("/splits/stream", s.streamLedger)
	authed.POST("/splits/:id/settle", s.settleSplit)

	authed.GET("/expenses", s.listExpenses)
	authed.POST("/expenses", s.createExpense)
	authed.DELETE("/expenses/:id", s.deleteExpense)
	authed.GET("/expenses/summary", s.expenseSummary)

	authed.GET("/tasks", s.listTasks)
	authed.POST("/tasks", s.createTask)
	authed.PATCH("/tasks/:id", s.updateTask)
	authed.DELETE("/tasks/:id", s.deleteTask)

	authed.GET("/timetable", s.getTimetable)
	authed.PUT("/timetable", s.saveTimetable)

	authed.POST("/attendance", s.markAttendance)
	authed.GET("/attendance", s.listAttendance)
	authed.GET("/attendance/summary", s.attendanceSummary)
}

// Start serves cleartext HTTP/2 (h2c) on addr and blocks until shutdown.
func (s *Server) Start(addr string) error {
	return s.app.StartH2CServer(addr, &http2.Server{})
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ServeHTTP lets tests drive the server through httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}
