package ical

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

// CalendarInfo describes one generated calendar document.
type CalendarInfo struct {
	Name     string // X-WR-CALNAME, e.g. "JBNU_세미나/강의"
	Timezone string // e.g. "Asia/Seoul"
}

// Entry is one event row handed to the encoder. Start and End are already
// resolved, ordered instants.
type Entry struct {
	UID         string
	Summary     string
	Description string
	Location    string
	URL         string
	Start       time.Time
	End         time.Time
}

const prodID = "-//jinseok1006//JBNU_Img2Cal//KO"

// Build serializes the entries into a single ICS document.
func Build(info CalendarInfo, entries []Entry) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetName(info.Name)
	cal.SetXWRCalName(info.Name)
	if info.Timezone != "" {
		cal.SetXWRTimezone(info.Timezone)
	}

	now := time.Now().UTC()
	for _, e := range entries {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		ev.SetSummary(e.Summary)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.URL != "" {
			ev.SetURL(e.URL)
		}
	}

	return cal.Serialize()
}
