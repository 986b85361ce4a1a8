// Package api is the HTTP surface: one endpoint to submit a turn, a health
// probe, and a server-sent-events stream of turn lifecycle events.
package api

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/masking"
	"github.com/rapport-chat/rapport/pkg/models"
)

// TurnSubmitter accepts one user message and blocks until the turn
// resolves. Satisfied by *session.Manager.
type TurnSubmitter interface {
	Submit(ctx context.Context, botID, externalID, input string) (models.TurnResult, error)
}

// Server is the HTTP API server.
type Server struct {
	sessions TurnSubmitter
	bus      *events.Bus
	db       *sql.DB
	masker   *masking.Service
	cfg      *config.Config
	logger   *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server. db may be nil in tests; the health
// endpoint then skips the database probe.
func NewServer(sessions TurnSubmitter, bus *events.Bus, db *sql.DB, masker *masking.Service, cfg *config.Config, logger *slog.Logger) *Server {
	return &Server{
		sessions: sessions,
		bus:      bus,
		db:       db,
		masker:   masker,
		cfg:      cfg,
		logger:   logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(securityHeaders())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/turn", s.handleTurn)
		v1.GET("/health", s.handleHealth)
		v1.GET("/stream", s.handleStream)
	}
	return r
}

// Start runs the listener until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
