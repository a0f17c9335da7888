package vision

import "fmt"

// OCRError is a per-image extraction failure. Callers treat it as
// recoverable: the image's contribution is skipped, the round continues.
type OCRError struct {
	ImageURL string
	Err      error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("ocr failed for %s: %v", e.ImageURL, e.Err)
}

func (e *OCRError) Unwrap() error {
	return e.Err
}
