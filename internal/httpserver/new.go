package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "pneuma-faq-bot/internal/chat/delivery/http"
	"pneuma-faq-bot/internal/deal"
	"pneuma-faq-bot/internal/dispatcher"
	"pneuma-faq-bot/pkg/log"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	dispatcherUC dispatcher.UseCase
	sender       chatHTTP.Sender
	chatConfig   chatHTTP.Config

	// Deals domain
	dealUC deal.UseCase

	readiness map[string]ReadinessCheck
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Chat domain
	Dispatcher dispatcher.UseCase
	Sender     chatHTTP.Sender // optional, WhatsApp Cloud API replies
	Chat       chatHTTP.Config

	// Deals domain, optional
	Deals deal.UseCase

	// Readiness checks keyed by dependency name.
	Readiness map[string]ReadinessCheck
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		dispatcherUC: cfg.Dispatcher,
		sender:       cfg.Sender,
		chatConfig:   cfg.Chat,
		dealUC:       cfg.Deals,
		readiness:    cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dispatcherUC == nil {
		return errors.New("dispatcher is required")
	}
	return nil
}
