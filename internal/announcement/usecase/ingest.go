package usecase

import (
	"context"
	"fmt"

	"img2cal/internal/announcement"
	"img2cal/internal/model"
)

// Ingest stores a newly crawled announcement. Re-ingesting an existing ID is
// a no-op so the crawler can be re-run over already-seen board pages.
func (uc *implUseCase) Ingest(ctx context.Context, input announcement.IngestInput) (announcement.IngestOutput, error) {
	if input.ID == "" {
		return announcement.IngestOutput{}, announcement.ErrMissingID
	}

	exists, err := uc.repo.Exists(ctx, input.ID)
	if err != nil {
		return announcement.IngestOutput{}, fmt.Errorf("failed to check announcement %s: %w", input.ID, err)
	}
	if exists {
		uc.l.Infof(ctx, "Ingest: announcement %s already exists, skipping", input.ID)
		return announcement.IngestOutput{ID: input.ID, Skipped: true}, nil
	}

	a := model.Announcement{
		ID:       input.ID,
		Title:    input.Title,
		URL:      input.URL,
		PostedAt: input.PostedAt,
		Body:     input.Body,
	}
	for _, u := range input.ImageURLs {
		a.Images = append(a.Images, model.Image{URL: u})
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return announcement.IngestOutput{}, fmt.Errorf("failed to store announcement %s: %w", input.ID, err)
	}

	uc.l.Infof(ctx, "Ingest: stored announcement %s with %d images", input.ID, len(a.Images))
	return announcement.IngestOutput{ID: input.ID}, nil
}
