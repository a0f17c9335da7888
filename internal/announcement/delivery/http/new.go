package http

import (
	"img2cal/internal/announcement"
	"img2cal/pkg/log"
)

type handler struct {
	l  log.Logger
	uc announcement.UseCase
}

// New creates a new HTTP handler for the announcement domain.
func New(l log.Logger, uc announcement.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
