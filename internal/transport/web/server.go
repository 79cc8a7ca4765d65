// Package web serves the solver page and its JSON API.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sandevgo/argand/internal/config"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/pkg/log"
)

// Boundary is the part of the application controller the server uses.
type Boundary interface {
	SubmitEquation(ctx context.Context, text string) (app.Outcome, error)
	CurrentHistory() []core.HistoryEntry
	AggregatedRoots() []core.ComplexRoot
	PurgeHistory(ctx context.Context)
	State() app.Snapshot
	Busy() bool
	Examples() []core.Example
}

type Server struct {
	cfg    *config.ServerConfig
	ctrl   Boundary
	engine *gin.Engine
	srv    *http.Server
	page   *page
}

func NewServer(ctx context.Context, cfg *config.ServerConfig, ctrl Boundary) (*Server, error) {
	if !config.IsDebug() {
		gin.SetMode(gin.ReleaseMode)
	}

	p, err := newPage()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		ctrl:   ctrl,
		engine: gin.New(),
		page:   p,
	}
	s.engine.Use(gin.Recovery(), withContext(ctx), requestLogger(), requestMetrics())
	s.routes()

	s.srv = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.engine,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.POST("/solve", s.handleSolveForm)
	s.engine.POST("/purge", s.handlePurgeForm)

	s.engine.GET("/health", handleHealth)
	if s.cfg.EnableMetrics {
		s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := s.engine.Group("/api")
	api.POST("/solve", s.handleSolve)
	api.GET("/history", s.handleHistory)
	api.DELETE("/history", s.handlePurge)
	api.GET("/roots", s.handleRoots)
	api.GET("/examples", s.handleExamples)
	api.GET("/state", s.handleState)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	return s.srv.Shutdown(ctx)
}
