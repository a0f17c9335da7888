package usecase

import (
	"time"

	"img2cal/internal/feed"
	"img2cal/internal/model"
)

// resolveEventTime turns the classifier's period strings into one ordered
// (start, end) instant pair. The application period wins over the activity
// period, and a bare deadline date is modeled as a same-day business-hours
// window ending at the deadline.
func (uc *implUseCase) resolveEventTime(cd model.CalendarData) (time.Time, time.Time, error) {
	appStart, appStartOK := uc.parser.Normalize(cd.ApplicationPeriod.StartTime)
	appEnd, appEndOK := uc.parser.Normalize(cd.ApplicationPeriod.EndTime)
	actStart, actStartOK := uc.parser.Normalize(cd.ActivityPeriod.StartTime)
	actEnd, actEndOK := uc.parser.Normalize(cd.ActivityPeriod.EndTime)

	var start, end time.Time

	switch {
	case appEndOK:
		// A deadline at exactly midnight means "due by end of day".
		if isMidnight(appEnd) {
			appEnd = timeOfDay(appEnd, 18, 0)
		}
		end = appEnd

		if appStartOK && sameDate(appStart, end) {
			start = appStart
		} else if end.Hour() <= 9 {
			start = timeOfDay(end, 0, 1)
		} else {
			start = timeOfDay(end, 9, 0)
		}

	case actStartOK:
		// A bare activity start date means "begins during business hours".
		if isMidnight(actStart) {
			actStart = timeOfDay(actStart, 9, 0)
		}
		start = actStart

		if actEndOK && sameDate(start, actEnd) {
			end = actEnd
		} else if start.Hour() >= 18 {
			end = timeOfDay(start, 23, 59)
		} else {
			end = timeOfDay(start, 18, 0)
		}

	default:
		return time.Time{}, time.Time{}, feed.ErrNoPeriodInfo
	}

	// The heuristics above keep start and end on the same date, but an
	// explicit same-day window from the classifier can still be inverted.
	if start.After(end) {
		return time.Time{}, time.Time{}, feed.ErrStartAfterEnd
	}

	return start, end, nil
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// timeOfDay keeps t's date and replaces the clock time.
func timeOfDay(t time.Time, hour, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, t.Location())
}
