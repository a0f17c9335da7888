package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"img2cal/internal/feed"
	"img2cal/internal/model"
	"img2cal/pkg/ical"
)

const feedContentType = "text/calendar; charset=utf-8"

// Generate takes a full snapshot of the store, groups approved announcements
// by event category and writes one ICS artifact per non-empty category.
func (uc *implUseCase) Generate(ctx context.Context) (feed.GenerateOutput, error) {
	announcements, err := uc.repo.List(ctx)
	if err != nil {
		return feed.GenerateOutput{}, fmt.Errorf("failed to load announcements: %w", err)
	}

	buckets := make(map[model.EventType][]model.Announcement)
	for _, a := range announcements {
		if a.Approved == nil || !*a.Approved || a.CalendarData == nil {
			continue
		}
		et := a.CalendarData.EventType
		if !et.Valid() {
			et = model.EventOthers
		}
		buckets[et] = append(buckets[et], a)
	}

	var out feed.GenerateOutput
	for _, et := range model.EventTypes {
		group := buckets[et]
		if len(group) == 0 {
			continue
		}

		entries := make([]ical.Entry, 0, len(group))
		for _, a := range group {
			start, end, err := uc.resolveEventTime(*a.CalendarData)
			if err != nil {
				uc.l.Warnf(ctx, "Generate: skipping %s: %v", a.ID, err)
				out.Skipped++
				continue
			}

			entries = append(entries, ical.Entry{
				UID:         uc.entryUID(a.ID),
				Summary:     a.Title,
				Description: a.CalendarData.Description,
				Location:    a.CalendarData.Location,
				URL:         a.URL,
				Start:       start,
				End:         end,
			})
		}

		// An artifact with zero entries would overwrite a previously good
		// feed; leave the old one in place instead.
		if len(entries) == 0 {
			uc.l.Warnf(ctx, "Generate: no resolvable events for %s, not writing", et)
			continue
		}

		name := fmt.Sprintf("%s_%s", uc.cfg.Name, et.DisplayName())
		content := ical.Build(ical.CalendarInfo{Name: name, Timezone: uc.cfg.Timezone}, entries)

		filename := string(et) + ".ics"
		if err := uc.sink.Put(ctx, filename, content, feedContentType); err != nil {
			return feed.GenerateOutput{}, fmt.Errorf("failed to write feed %s: %w", filename, err)
		}

		uc.l.Infof(ctx, "Generate: wrote %s with %d events", filename, len(entries))
		out.Feeds = append(out.Feeds, feed.FeedInfo{
			EventType:  et,
			Filename:   filename,
			EventCount: len(entries),
		})
	}

	return out, nil
}

// entryUID derives a stable calendar UID from the announcement id. An empty
// id falls back to a random UID, which changes between generation passes.
func (uc *implUseCase) entryUID(id string) string {
	if id == "" {
		id = uuid.NewString()
	}
	return fmt.Sprintf("%s@%s", id, uc.cfg.UIDDomain)
}
