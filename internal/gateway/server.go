// Package gateway is Cineco's HTTP server: the chat endpoint, the direct
// archive API, and the static frontend.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/soyeahso/cineco/internal/chat"
	"github.com/soyeahso/cineco/internal/config"
	"github.com/soyeahso/cineco/internal/llm"
	"github.com/soyeahso/cineco/internal/logging"
	"github.com/soyeahso/cineco/internal/media"
)

// Chatter runs one conversational turn. Satisfied by *chat.Orchestrator.
type Chatter interface {
	Respond(ctx context.Context, message string, history []llm.Message) (*chat.Result, error)
}

// Archive serves the direct (non-chat) archive endpoints.
type Archive interface {
	Search(ctx context.Context, query string, rows int) ([]media.Item, error)
	Metadata(ctx context.Context, identifier string) (*media.ItemDetails, error)
}

// Server is the Cineco HTTP server.
type Server struct {
	cfg     config.Config
	log     *logging.Logger
	chatter Chatter
	archive Archive

	startedAt  time.Time
	httpServer *http.Server
}

// New creates the HTTP server. chatter may be nil when no model provider is
// configured; the chat endpoint then reports the service as unavailable.
func New(cfg config.Config, log *logging.Logger, chatter Chatter, archive Archive) *Server {
	return &Server{
		cfg:     cfg,
		log:     log.Sub("gateway"),
		chatter: chatter,
		archive: archive,
	}
}

// resolveBindAddr computes the listen address from config.
func resolveBindAddr(cfg config.ServerConfig) string {
	switch cfg.Bind {
	case "loopback":
		return fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	case "lan":
		return fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	case "custom":
		host := cfg.CustomBindHost
		if host == "" {
			host = "0.0.0.0"
		}
		return fmt.Sprintf("%s:%d", host, cfg.Port)
	default:
		return fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	}
}

// Start begins serving. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	addr := resolveBindAddr(s.cfg.Server)

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      withMiddleware(mux, s.log),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // chat turns wait on two model completions
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(l net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.startedAt = time.Now()
	s.log.Info().
		Str("addr", ln.Addr().String()).
		Str("bind", s.cfg.Server.Bind).
		Str("static_dir", s.cfg.Server.StaticDir).
		Msg("server ready")

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the server's listen address, or empty string if not started.
func (s *Server) Addr() string {
	if s.httpServer != nil {
		return s.httpServer.Addr
	}
	return ""
}
