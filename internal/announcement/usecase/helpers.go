package usecase

import (
	"context"
	"fmt"
	"strings"

	"img2cal/internal/announcement"
	"img2cal/internal/model"
	"img2cal/pkg/openai"
)

// Sampling parameters for the classification call. Low temperature keeps the
// JSON output deterministic.
const (
	classifyMaxTokens   = 500
	classifyTemperature = 0.2
	classifyTopP        = 0.9
)

// classifyWithLLM sends one classification request and validates the response.
func (uc *implUseCase) classifyWithLLM(ctx context.Context, title, body, ocrText string, currentImageCount, totalImages int) (model.Classification, error) {
	req := openai.ChatRequest{
		Messages: []openai.Message{
			{Role: "system", Content: openai.ClassifierSystemPrompt},
			{Role: "user", Content: openai.BuildAnnouncementPayload(title, body, ocrText, currentImageCount, totalImages)},
		},
		MaxTokens:   classifyMaxTokens,
		Temperature: classifyTemperature,
		TopP:        classifyTopP,
	}

	resp, err := uc.llm.CreateChatCompletion(ctx, req)
	if err != nil {
		return model.Classification{}, fmt.Errorf("classifier request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return model.Classification{}, announcement.ErrEmptyResponse
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	uc.l.Debugf(ctx, "classifier raw response: %s", raw)

	verdict, err := parseClassification(raw, currentImageCount, totalImages)
	if err != nil {
		uc.l.Errorf(ctx, "failed to parse classifier response. Raw=%q", raw)
		return model.Classification{}, err
	}

	return verdict, nil
}
