package usecase

import (
	"context"
	"fmt"
	"strings"

	"img2cal/internal/announcement"
	"img2cal/internal/announcement/repository"
	"img2cal/internal/model"
)

// imageCountStep is how many additional images each needs-more-images round
// unlocks. Policy constant, not derived from content.
const imageCountStep = 2

// ClassifyRound runs one progressive classification round.
func (uc *implUseCase) ClassifyRound(ctx context.Context, input announcement.ClassifyInput) (announcement.ClassifyOutput, error) {
	if input.ID == "" {
		return announcement.ClassifyOutput{}, announcement.ErrMissingID
	}

	a, err := uc.repo.Get(ctx, input.ID)
	if err != nil {
		return announcement.ClassifyOutput{}, err
	}

	// A record with a decision and no pending revalidation is finalized.
	// Re-invoking it must not flip the stored verdict.
	if a.Approved != nil && !a.RevalidationRequested {
		status := model.StatusRejected
		if *a.Approved {
			status = model.StatusApproved
		}
		uc.l.Infof(ctx, "ClassifyRound: %s already finalized as %s, skipping", a.ID, status)
		return announcement.ClassifyOutput{ID: a.ID, Status: status, Reason: a.Reason}, nil
	}

	totalImages := len(a.Images)

	currentCount := input.NextImageCount
	if currentCount <= 0 {
		uc.l.Infof(ctx, "ClassifyRound: invalid image count %d for %s, defaulting to 1", currentCount, a.ID)
		currentCount = 1
	}
	if currentCount > totalImages {
		uc.l.Infof(ctx, "ClassifyRound: requested %d images for %s but only %d exist, capping", currentCount, a.ID, totalImages)
		currentCount = totalImages
	}

	ocrText, err := uc.collectEvidence(ctx, &a, currentCount)
	if err != nil {
		return announcement.ClassifyOutput{}, err
	}

	verdict, err := uc.classifyWithLLM(ctx, a.Title, a.Body, ocrText, currentCount, totalImages)
	if err != nil {
		return announcement.ClassifyOutput{}, err
	}

	switch verdict.Status {
	case model.StatusApproved:
		err := uc.repo.SetVerification(ctx, a.ID, repository.VerificationUpdate{
			Approved:     true,
			CalendarData: verdict.Calendar,
			Reason:       verdict.Reason,
		})
		if err != nil {
			return announcement.ClassifyOutput{}, fmt.Errorf("failed to persist approval of %s: %w", a.ID, err)
		}
		uc.l.Infof(ctx, "ClassifyRound: approved %s (%s)", a.ID, verdict.Calendar.EventType)
		return announcement.ClassifyOutput{ID: a.ID, Status: model.StatusApproved, Reason: verdict.Reason}, nil

	case model.StatusNeedsMoreImages:
		// The validator already downgrades this at the image cap; re-check
		// here so a contract drift cannot loop the orchestrator forever.
		if currentCount >= totalImages {
			err := uc.repo.SetVerification(ctx, a.ID, repository.VerificationUpdate{
				Approved: false,
				Reason:   verdict.Reason,
			})
			if err != nil {
				return announcement.ClassifyOutput{}, fmt.Errorf("failed to persist rejection of %s: %w", a.ID, err)
			}
			return announcement.ClassifyOutput{ID: a.ID, Status: model.StatusRejected, Reason: verdict.Reason}, nil
		}

		err := uc.repo.SetVerification(ctx, a.ID, repository.VerificationUpdate{
			Approved:              false,
			Reason:                verdict.Reason,
			RevalidationRequested: true,
		})
		if err != nil {
			return announcement.ClassifyOutput{}, fmt.Errorf("failed to persist revalidation request for %s: %w", a.ID, err)
		}

		nextCount := currentCount + imageCountStep
		if nextCount > totalImages {
			nextCount = totalImages
		}
		uc.l.Infof(ctx, "ClassifyRound: %s needs more images, next round with %d of %d", a.ID, nextCount, totalImages)
		return announcement.ClassifyOutput{
			ID:             a.ID,
			Status:         model.StatusNeedsMoreImages,
			Reason:         verdict.Reason,
			NextImageCount: nextCount,
		}, nil

	case model.StatusRejected:
		err := uc.repo.SetVerification(ctx, a.ID, repository.VerificationUpdate{
			Approved: false,
			Reason:   verdict.Reason,
		})
		if err != nil {
			return announcement.ClassifyOutput{}, fmt.Errorf("failed to persist rejection of %s: %w", a.ID, err)
		}
		uc.l.Infof(ctx, "ClassifyRound: rejected %s: %s", a.ID, verdict.Reason)
		return announcement.ClassifyOutput{ID: a.ID, Status: model.StatusRejected, Reason: verdict.Reason}, nil

	default:
		return announcement.ClassifyOutput{}, fmt.Errorf("%w: %q", announcement.ErrUnknownStatus, verdict.Status)
	}
}

// collectEvidence makes OCR text available for every image below count and
// returns the concatenation in image order. A failed extraction is skipped;
// a failed persist is fatal. Newly extracted text is written back into a so
// the caller sees a consistent view.
func (uc *implUseCase) collectEvidence(ctx context.Context, a *model.Announcement, count int) (string, error) {
	var sb strings.Builder

	for i := 0; i < count; i++ {
		img := a.Images[i]

		if img.OCRText != "" {
			sb.WriteString(img.OCRText)
			sb.WriteString("\n")
			continue
		}

		text, err := uc.ocr.ExtractText(ctx, img.URL)
		if err != nil {
			uc.l.Errorf(ctx, "collectEvidence: ocr failed for %s image %d: %v", a.ID, i, err)
			continue
		}

		if err := uc.repo.SetImageOCRText(ctx, a.ID, i, text); err != nil {
			return "", fmt.Errorf("failed to persist ocr text for %s image %d: %w", a.ID, i, err)
		}
		a.Images[i].OCRText = text

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
