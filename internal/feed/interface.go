package feed

import "context"

// UseCase defines the business logic interface for the feed domain.
type UseCase interface {
	// Generate builds one ICS calendar per event category from all approved
	// announcements and writes the artifacts to the configured sink.
	Generate(ctx context.Context) (GenerateOutput, error)
}
