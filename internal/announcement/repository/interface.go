package repository

import (
	"context"

	"img2cal/internal/model"
)

// Repository is the interface for announcement data access.
type Repository interface {
	// Create stores a new announcement with its image list.
	Create(ctx context.Context, a model.Announcement) error

	// Exists reports whether an announcement with the given ID is stored.
	Exists(ctx context.Context, id string) (bool, error)

	// Get loads one announcement with its images in index order.
	Get(ctx context.Context, id string) (model.Announcement, error)

	// List returns a full snapshot of all announcements.
	List(ctx context.Context) ([]model.Announcement, error)

	// SetImageOCRText stores OCR text for one image. A populated value is
	// never overwritten; the call is a no-op in that case.
	SetImageOCRText(ctx context.Context, id string, index int, ocrText string) error

	// SetVerification applies one round's verification decision.
	SetVerification(ctx context.Context, id string, opt VerificationUpdate) error
}
