package vision

import "context"

// IVision defines the interface for the OCR text-extraction client.
// Implementations are safe for concurrent use.
type IVision interface {
	// ExtractText returns the text detected in the image at imageURL
	ExtractText(ctx context.Context, imageURL string) (string, error)
}
