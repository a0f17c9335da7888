package usecase

import (
	"errors"
	"testing"
	"time"

	"img2cal/internal/feed"
	"img2cal/internal/model"
	"img2cal/pkg/period"
)

func newResolver(t *testing.T) *implUseCase {
	t.Helper()
	parser, err := period.NewParser("Asia/Seoul")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return &implUseCase{parser: parser}
}

func TestResolveEventTime(t *testing.T) {
	uc := newResolver(t)
	loc := uc.parser.Location()

	at := func(year int, month time.Month, day, hour, min int) time.Time {
		return time.Date(year, month, day, hour, min, 0, 0, loc)
	}

	cases := []struct {
		name      string
		data      model.CalendarData
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{
			name: "application deadline at midnight becomes business-hours window",
			data: model.CalendarData{
				ApplicationPeriod: model.Period{EndTime: "2024-12-23T00:00:00"},
			},
			wantStart: at(2024, 12, 23, 9, 0),
			wantEnd:   at(2024, 12, 23, 18, 0),
		},
		{
			name: "same-day application window is kept verbatim",
			data: model.CalendarData{
				ApplicationPeriod: model.Period{
					StartTime: "2024-12-23T10:00:00",
					EndTime:   "2024-12-23T13:00:00",
				},
			},
			wantStart: at(2024, 12, 23, 10, 0),
			wantEnd:   at(2024, 12, 23, 13, 0),
		},
		{
			name: "application start on a different date is discarded",
			data: model.CalendarData{
				ApplicationPeriod: model.Period{
					StartTime: "2024-12-01T09:00:00",
					EndTime:   "2024-12-23T18:00:00",
				},
			},
			wantStart: at(2024, 12, 23, 9, 0),
			wantEnd:   at(2024, 12, 23, 18, 0),
		},
		{
			name: "early-morning deadline starts just after midnight",
			data: model.CalendarData{
				ApplicationPeriod: model.Period{EndTime: "2024-12-23T08:00:00"},
			},
			wantStart: at(2024, 12, 23, 0, 1),
			wantEnd:   at(2024, 12, 23, 8, 0),
		},
		{
			name: "application end wins over activity period",
			data: model.CalendarData{
				ApplicationPeriod: model.Period{EndTime: "2024-12-23T13:00:00"},
				ActivityPeriod: model.Period{
					StartTime: "2025-01-10T10:00:00",
					EndTime:   "2025-01-10T12:00:00",
				},
			},
			wantStart: at(2024, 12, 23, 9, 0),
			wantEnd:   at(2024, 12, 23, 13, 0),
		},
		{
			name: "bare activity start date becomes business-hours block",
			data: model.CalendarData{
				ActivityPeriod: model.Period{StartTime: "2024-12-23"},
			},
			wantStart: at(2024, 12, 23, 9, 0),
			wantEnd:   at(2024, 12, 23, 18, 0),
		},
		{
			name: "same-day activity end is kept verbatim",
			data: model.CalendarData{
				ActivityPeriod: model.Period{
					StartTime: "2024-12-23T13:30:00",
					EndTime:   "2024-12-23T15:00:00",
				},
			},
			wantStart: at(2024, 12, 23, 13, 30),
			wantEnd:   at(2024, 12, 23, 15, 0),
		},
		{
			name: "multi-day activity is clipped to the first day",
			data: model.CalendarData{
				ActivityPeriod: model.Period{
					StartTime: "2024-12-23T13:30:00",
					EndTime:   "2024-12-25T17:00:00",
				},
			},
			wantStart: at(2024, 12, 23, 13, 30),
			wantEnd:   at(2024, 12, 23, 18, 0),
		},
		{
			name: "evening activity start ends just before midnight",
			data: model.CalendarData{
				ActivityPeriod: model.Period{StartTime: "2024-12-23T19:00:00"},
			},
			wantStart: at(2024, 12, 23, 19, 0),
			wantEnd:   at(2024, 12, 23, 23, 59),
		},
		{
			name: "undefined strings count as absent",
			data: model.CalendarData{
				ApplicationPeriod: model.Period{StartTime: "undefined", EndTime: "undefined"},
				ActivityPeriod:    model.Period{StartTime: "UNDEFINED", EndTime: ""},
			},
			wantErr: feed.ErrNoPeriodInfo,
		},
		{
			name:    "no period information at all",
			data:    model.CalendarData{},
			wantErr: feed.ErrNoPeriodInfo,
		},
		{
			name: "inverted same-day application window fails",
			data: model.CalendarData{
				ApplicationPeriod: model.Period{
					StartTime: "2024-12-23T14:00:00",
					EndTime:   "2024-12-23T10:00:00",
				},
			},
			wantErr: feed.ErrStartAfterEnd,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := uc.resolveEventTime(tc.data)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !start.Equal(tc.wantStart) {
				t.Errorf("start = %s, want %s", start, tc.wantStart)
			}
			if !end.Equal(tc.wantEnd) {
				t.Errorf("end = %s, want %s", end, tc.wantEnd)
			}
		})
	}
}
