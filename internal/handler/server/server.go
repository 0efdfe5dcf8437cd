package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bagdasarian/club-shop/internal/config"
	"github.com/bagdasarian/club-shop/internal/handler"
	"github.com/sirupsen/logrus"
)

type Server struct {
	server *http.Server
	log    logrus.FieldLogger
}

func NewServer(h *handler.Handler, cfg config.HTTPConfig, log logrus.FieldLogger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(h, log, cfg.RequestTimeout),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: log,
	}
}

func (s *Server) Start() error {
	s.log.WithField("addr", s.server.Addr).Info("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
