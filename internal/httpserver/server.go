package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	tele "gopkg.in/telebot.v3"
)

// UpdateProcessor consumes decoded Telegram updates. Satisfied by bot.Bot.
type UpdateProcessor interface {
	ProcessUpdate(u tele.Update)
}

// Deps collects the server's collaborators.
type Deps struct {
	Bot UpdateProcessor
}

// Server wraps the HTTP server setup for the webhook deployment variant.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server exposing the webhook and health routes.
func New(addr string, logger *log.Logger, deps Deps) (*Server, error) {
	router := buildRouter(logger, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
