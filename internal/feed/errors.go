package feed

import "errors"

// Resolution errors for a single announcement. Both skip the announcement
// rather than failing the whole generation pass.
var (
	ErrNoPeriodInfo  = errors.New("no resolvable application or activity period")
	ErrStartAfterEnd = errors.New("resolved start is after resolved end")
)
