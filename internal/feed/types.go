package feed

import "img2cal/internal/model"

// FeedInfo describes one generated calendar artifact.
type FeedInfo struct {
	EventType  model.EventType `json:"event_type"`
	Filename   string          `json:"filename"`
	EventCount int             `json:"event_count"`
}

// GenerateOutput reports what a generation pass produced. Skipped counts
// approved announcements whose event time could not be resolved.
type GenerateOutput struct {
	Feeds   []FeedInfo `json:"feeds"`
	Skipped int        `json:"skipped"`
}
