package usecase

import (
	"img2cal/internal/announcement/repository"
	pkgLog "img2cal/pkg/log"
	"img2cal/pkg/openai"
	"img2cal/pkg/vision"
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  openai.IOpenAI
	ocr  vision.IVision
	repo repository.Repository
}

// New creates a new announcement UseCase instance.
func New(
	l pkgLog.Logger,
	llm openai.IOpenAI,
	ocr vision.IVision,
	repo repository.Repository,
) *implUseCase {
	return &implUseCase{
		l:    l,
		llm:  llm,
		ocr:  ocr,
		repo: repo,
	}
}
