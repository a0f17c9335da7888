package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"img2cal/internal/announcement"
	"img2cal/internal/feed"
	"img2cal/internal/middleware"
	"img2cal/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	announcementUC announcement.UseCase
	feedUC         feed.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	AnnouncementUC announcement.UseCase
	FeedUC         feed.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		announcementUC: cfg.AnnouncementUC,
		feedUC:         cfg.FeedUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
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
	if srv.announcementUC == nil {
		return errors.New("announcement usecase is required")
	}
	if srv.feedUC == nil {
		return errors.New("feed usecase is required")
	}
	return nil
}
