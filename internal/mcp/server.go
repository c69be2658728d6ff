package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-atlas/internal/config"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/httpview"
	"github.com/honeycarbs/vacancy-atlas/internal/mcp/tools"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// Server wraps an MCP SDK server and the JSON view routes with an HTTP listener
type Server struct {
	logger *logging.Logger
	config config.Config

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs a new MCP HTTP server
func NewServer(log *logging.Logger, cfg config.Config, res *Resources) (*Server, error) {
	if res == nil || res.Catalog == nil || res.Resolver == nil {
		return nil, fmt.Errorf("mcp: catalog and detail resolver are required")
	}

	strategy, err := vacancy.ParseStrategy(cfg.Map.Strategy)
	if err != nil {
		return nil, err
	}

	impl := &sdkmcp.Implementation{
		Name:    "vacancy-atlas",
		Version: "0.1.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	tools.Register(mcpServer, log,
		tools.WithVacancyList(res.Catalog),
		tools.WithVacancyMap(res.Catalog, strategy),
		tools.WithVacancyDetail(res.Resolver),
		tools.WithSheetsExport(res.Catalog, res.Sheets, cfg.Sheets.SpreadsheetID),
	)

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	views, err := httpview.NewHandler(res.Catalog, res.Resolver, strategy, log)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", handler)
	mux.HandleFunc("GET /healthz", healthz(res.Health, log))
	views.Register(mux)

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		config: cfg,
		srv:    httpSrv,
	}, nil
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP HTTP server shutdown complete")
	return nil
}
