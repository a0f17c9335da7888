package http

import (
	"img2cal/internal/announcement"
)

// --- Request DTOs ---

type ingestReq struct {
	ID        string   `json:"id"         binding:"required"`
	Title     string   `json:"title"      binding:"required"`
	URL       string   `json:"url"        binding:"required,url"`
	PostedAt  string   `json:"posted_at"`
	Body      string   `json:"body"`
	ImageURLs []string `json:"image_urls"`
}

func (r ingestReq) validate() error { return nil }

func (r ingestReq) toInput() announcement.IngestInput {
	return announcement.IngestInput{
		ID:        r.ID,
		Title:     r.Title,
		URL:       r.URL,
		PostedAt:  r.PostedAt,
		Body:      r.Body,
		ImageURLs: r.ImageURLs,
	}
}

// ---

type classifyReq struct {
	ID             string `json:"-"` // populated from URI param
	NextImageCount int    `json:"next_image_count"`
}

func (r classifyReq) validate() error { return nil }

func (r classifyReq) toInput() announcement.ClassifyInput {
	return announcement.ClassifyInput{
		ID:             r.ID,
		NextImageCount: r.NextImageCount,
	}
}

// --- Response DTOs ---

type ingestResp struct {
	ID      string `json:"id"`
	Skipped bool   `json:"skipped"`
}

func (h *handler) newIngestResp(out announcement.IngestOutput) ingestResp {
	return ingestResp{
		ID:      out.ID,
		Skipped: out.Skipped,
	}
}

type classifyResp struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	Reason         string `json:"reason"`
	NextImageCount int    `json:"next_image_count,omitempty"`
}

func (h *handler) newClassifyResp(out announcement.ClassifyOutput) classifyResp {
	return classifyResp{
		ID:             out.ID,
		Status:         string(out.Status),
		Reason:         out.Reason,
		NextImageCount: out.NextImageCount,
	}
}
