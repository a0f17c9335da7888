package period

import (
	"fmt"
	"strings"
	"time"
)

// Parser normalizes free-text timestamp candidates into time.Time values
// anchored to a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new period parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// fallbackLayouts are tried in order after RFC3339. The classifier is asked
// for "YYYY-MM-DDTHH:mm:ss" or "YYYY-MM-DD" but scraped values leak through
// in a few other shapes.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// Sanitize trims the value and maps empty or the literal "undefined"
// (any casing) to the empty string.
func Sanitize(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "undefined") {
		return ""
	}
	return trimmed
}

// Normalize parses a timestamp candidate into an instant in the parser's
// timezone. It never fails hard: unparseable input reports ok=false.
// Date-only layouts yield midnight of that date.
func (p *Parser) Normalize(value string) (time.Time, bool) {
	value = Sanitize(value)
	if value == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(p.location), true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
