package usecase

import (
	"img2cal/config"
	"img2cal/internal/announcement/repository"
	"img2cal/internal/feed"
	"img2cal/internal/feed/sink"
	"img2cal/pkg/log"
	"img2cal/pkg/period"
)

type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	sink   sink.Sink
	parser *period.Parser
	cfg    config.CalendarConfig
}

var _ feed.UseCase = &implUseCase{}

func New(l log.Logger, repo repository.Repository, sn sink.Sink, parser *period.Parser, cfg config.CalendarConfig) feed.UseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		sink:   sn,
		parser: parser,
		cfg:    cfg,
	}
}
