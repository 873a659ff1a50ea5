package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"karltracker/internal/application"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const livenessBody = "KarlTracker Bot is running!"

type Server struct {
	echo     *echo.Echo
	server   *http.Server
	listener net.Listener
	registry *prometheus.Registry
	logger   application.Logger
}

// NewServer serves liveness on "/" and, when registry is set, metrics on "/metrics".
func NewServer(port string, registry *prometheus.Registry, logger application.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		registry: registry,
		logger:   logger,
		server: &http.Server{
			Addr:         net.JoinHostPort("", port),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/", s.liveness)
	if s.registry != nil {
		s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}
}

func (s *Server) liveness(c echo.Context) error {
	return c.String(http.StatusOK, livenessBody)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Init binds the listen address so a taken port fails startup.
func (s *Server) Init() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	s.listener = ln
	s.echo.Listener = ln
	return nil
}

// Addr is the bound address, empty before Init.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) Run(_ context.Context) {
	s.logger.Info("Server running", "addr", s.Addr())
	if err := s.echo.StartServer(s.server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("http server stopped", "error", err)
	}
}

// Stop drains in-flight requests on the server passed to StartServer.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error("http server shutdown failed", "error", err)
	}
	// Shutdown only closes listeners Serve has seen.
	if s.listener != nil {
		_ = s.listener.Close()
	}
}
