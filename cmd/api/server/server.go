package server

import (
	"net/http"

	"go.uber.org/zap"

	"rest-user-service/cmd/api/di"
	"rest-user-service/internal/config"
)

// Server struct holds the HTTP server and its dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance around the container's handlers
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   SetupHTTPServer(cfg, l, c),
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
	return s.HTTP.ListenAndServe()
}
