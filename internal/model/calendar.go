package model

// CalendarData is the structured event payload the classifier extracts from
// an approved announcement. Period bounds are kept exactly as the classifier
// emitted them; normalization happens at feed-generation time.
type CalendarData struct {
	Discipline        string    `json:"discipline"`
	ApplicationPeriod Period    `json:"applicationPeriod"`
	ActivityPeriod    Period    `json:"activityPeriod"`
	EventType         EventType `json:"eventType"`
	Location          string    `json:"location"`
	Description       string    `json:"description"`
}

// Period is a possibly half-open date range. Either bound may be empty, the
// literal "undefined", a bare date, or a full date-time.
type Period struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// EventType is the closed category set used to group calendar feeds.
type EventType string

const (
	EventSeminarLecture     EventType = "SeminarLecture"
	EventCompetitionContest EventType = "CompetitionContest"
	EventRecruitmentCareer  EventType = "RecruitmentCareer"
	EventCulturalEvent      EventType = "CulturalEvent"
	EventVolunteerActivity  EventType = "VolunteerActivity"
	EventWorkshopPractice   EventType = "WorkshopPractice"
	EventOthers             EventType = "Others"
)

// EventTypes lists all categories in feed output order.
var EventTypes = []EventType{
	EventSeminarLecture,
	EventCompetitionContest,
	EventRecruitmentCareer,
	EventCulturalEvent,
	EventVolunteerActivity,
	EventWorkshopPractice,
	EventOthers,
}

var eventTypeNamesKorean = map[EventType]string{
	EventSeminarLecture:     "세미나/강의",
	EventCompetitionContest: "대회/공모전",
	EventRecruitmentCareer:  "채용/커리어",
	EventCulturalEvent:      "문화 행사",
	EventVolunteerActivity:  "봉사 활동",
	EventWorkshopPractice:   "워크샵/실습",
	EventOthers:             "기타",
}

// Valid reports whether t is one of the known categories.
func (t EventType) Valid() bool {
	_, ok := eventTypeNamesKorean[t]
	return ok
}

// DisplayName returns the Korean feed display name for the category.
func (t EventType) DisplayName() string {
	if name, ok := eventTypeNamesKorean[t]; ok {
		return name
	}
	return eventTypeNamesKorean[EventOthers]
}

// ClassificationStatus is the classifier's verdict for one round.
type ClassificationStatus string

const (
	StatusApproved        ClassificationStatus = "approved"
	StatusRejected        ClassificationStatus = "rejected"
	StatusNeedsMoreImages ClassificationStatus = "needs_more_images"
)

// Classification is the validated outcome of one classifier invocation.
// Calendar is non-nil exactly when Status is StatusApproved.
type Classification struct {
	Status   ClassificationStatus
	Reason   string
	Calendar *CalendarData
}
