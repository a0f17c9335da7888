package http

import (
	"img2cal/internal/feed"
	"img2cal/pkg/log"
)

type handler struct {
	l  log.Logger
	uc feed.UseCase
}

// New creates a new HTTP handler for the feed domain.
func New(l log.Logger, uc feed.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
