package model

// Announcement is one scraped notice board post. The crawler creates the
// record; classification rounds mutate the verification fields and fill in
// image OCR text as evidence is consumed.
type Announcement struct {
	ID       string  // board post ID
	Title    string
	URL      string  // source post URL
	PostedAt string  // posting date as shown on the board
	Body     string  // plain-text post body
	Images   []Image // attachment images in document order

	// Verification state, written by classification rounds.
	Approved              *bool // nil until a round reaches a decision
	CalendarData          *CalendarData
	Reason                string
	RevalidationRequested bool
}

// Image is one attachment of an announcement. OCRText is populated lazily the
// first time the image falls inside the evidence window and never rewritten.
type Image struct {
	URL     string
	OCRText string
}
