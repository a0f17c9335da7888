package repository

import "img2cal/internal/model"

// VerificationUpdate carries the fields a classification round writes back.
// CalendarData is nil for every outcome except approval.
// RevalidationRequested is true only for a needs-more-images round; terminal
// decisions clear it so a finished record is distinguishable from one
// awaiting re-invocation.
type VerificationUpdate struct {
	Approved              bool
	CalendarData          *model.CalendarData
	Reason                string
	RevalidationRequested bool
}
