package announcement

import "context"

// UseCase defines the business logic interface for the announcement domain.
type UseCase interface {
	// Ingest stores a newly crawled announcement. Re-ingesting an existing ID is a no-op.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)

	// ClassifyRound runs one progressive classification round for an announcement:
	// it accumulates OCR evidence up to the requested image count, asks the
	// classifier for a verdict, persists the result, and reports whether the
	// orchestrator should re-invoke with more evidence.
	ClassifyRound(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}
