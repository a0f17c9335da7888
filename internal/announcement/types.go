package announcement

import "img2cal/internal/model"

// IngestInput is one crawled announcement handed over by the crawler.
type IngestInput struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	PostedAt  string   `json:"posted_at"`
	Body      string   `json:"body"`
	ImageURLs []string `json:"image_urls"`
}

// IngestOutput reports the result of an ingest attempt.
type IngestOutput struct {
	ID      string `json:"id"`
	Skipped bool   `json:"skipped"` // true when the announcement already existed
}

// ClassifyInput identifies the announcement and how much image evidence this
// round should use. NextImageCount <= 0 means "start from the beginning".
type ClassifyInput struct {
	ID             string
	NextImageCount int
}

// ClassifyOutput is the orchestrator-facing result of one round.
// NextImageCount is set only when Status is needs_more_images and unprocessed
// images remain.
type ClassifyOutput struct {
	ID             string                     `json:"id"`
	Status         model.ClassificationStatus `json:"status"`
	Reason         string                     `json:"reason"`
	NextImageCount int                        `json:"next_image_count,omitempty"`
}
