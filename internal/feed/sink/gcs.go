package sink

import (
	"context"

	"img2cal/pkg/gstorage"
)

// GCS writes artifacts into a Google Cloud Storage bucket.
type GCS struct {
	client *gstorage.Client
	bucket string
}

func NewGCS(client *gstorage.Client, bucket string) *GCS {
	return &GCS{
		client: client,
		bucket: bucket,
	}
}

func (s *GCS) Put(ctx context.Context, name, content, contentType string) error {
	return s.client.Upload(ctx, s.bucket, name, content, contentType)
}
