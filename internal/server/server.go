// internal/server/server.go

// Package server exposes the matching engine over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pratham1800/HouseHelp/internal/common/config"
	"github.com/pratham1800/HouseHelp/internal/common/database"
	"github.com/pratham1800/HouseHelp/internal/common/logger"
	matchworkers "github.com/pratham1800/HouseHelp/internal/workers/matching/match-workers"
	selectworker "github.com/pratham1800/HouseHelp/internal/workers/matching/select-worker"
)

// Server wires the HTTP surface to the matching and selection handlers.
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	logger   logger.Logger
	matcher  *matchworkers.Handler
	selector *selectworker.Handler
	postgres *database.PostgresClient
	redis    *database.RedisClient
}

// New builds the server and registers all routes and middleware.
func New(
	cfg *config.Config,
	log logger.Logger,
	matcher *matchworkers.Handler,
	selector *selectworker.Handler,
	pg *database.PostgresClient,
	rdb *database.RedisClient,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	s := &Server{
		echo:     e,
		config:   cfg,
		logger:   log,
		matcher:  matcher,
		selector: selector,
		postgres: pg,
		redis:    rdb,
	}

	e.POST("/functions/match-workers", s.matchWorkers)
	e.POST("/functions/select-worker", s.selectWorker)

	e.GET("/health", s.health)
	e.GET("/ready", s.ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

// Start blocks serving HTTP on the given address.
func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
