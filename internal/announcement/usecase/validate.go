package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"img2cal/internal/announcement"
	"img2cal/internal/model"
)

const (
	defaultReason          = "No reason provided"
	needsMoreImagesReason  = "Needs more images for verification."
	maxImagesReachedReason = "Maximum image count reached; cannot process further images."
)

// classifierResponse is the raw shape the classifier promises to return.
type classifierResponse struct {
	Status   string              `json:"status"`
	Reason   string              `json:"reason"`
	Calendar *model.CalendarData `json:"calendar"`
}

// parseClassification validates one raw classifier response against the
// contract and maps it to an outcome. A needs_more_images verdict with no
// unprocessed images left is downgraded to rejected regardless of what the
// model said.
func parseClassification(raw string, currentImageCount, totalImages int) (model.Classification, error) {
	cleaned := sanitizeJSONResponse(raw)

	var resp classifierResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return model.Classification{}, fmt.Errorf("%w: %v", announcement.ErrResponseNotJSON, err)
	}

	if resp.Status == "" {
		return model.Classification{}, announcement.ErrMissingStatus
	}

	switch model.ClassificationStatus(resp.Status) {
	case model.StatusApproved:
		if resp.Calendar == nil {
			return model.Classification{}, announcement.ErrMissingCalendar
		}
		return model.Classification{
			Status:   model.StatusApproved,
			Reason:   reasonOrDefault(resp.Reason, defaultReason),
			Calendar: resp.Calendar,
		}, nil

	case model.StatusNeedsMoreImages:
		if currentImageCount >= totalImages {
			return model.Classification{
				Status: model.StatusRejected,
				Reason: maxImagesReachedReason,
			}, nil
		}
		return model.Classification{
			Status: model.StatusNeedsMoreImages,
			Reason: reasonOrDefault(resp.Reason, needsMoreImagesReason),
		}, nil

	case model.StatusRejected:
		return model.Classification{
			Status: model.StatusRejected,
			Reason: reasonOrDefault(resp.Reason, defaultReason),
		}, nil

	default:
		return model.Classification{}, fmt.Errorf("%w: %q", announcement.ErrUnknownStatus, resp.Status)
	}
}

func reasonOrDefault(reason, fallback string) string {
	if strings.TrimSpace(reason) == "" {
		return fallback
	}
	return reason
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first { and last }
	start := strings.IndexAny(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
