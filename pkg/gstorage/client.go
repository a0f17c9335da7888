package gstorage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

// Client wraps the Google Cloud Storage JSON API for object uploads.
type Client struct {
	service *storage.Service
}

// NewClientFromCredentialsFile creates a Storage client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Storage client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, storage.DevstorageReadWriteScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenSource := config.TokenSource(ctx)
	svc, err := storage.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Storage client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := storage.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Upload writes an object into the bucket with the given content type.
func (c *Client) Upload(ctx context.Context, bucket, name, content, contentType string) error {
	obj := &storage.Object{
		Name:        name,
		ContentType: contentType,
	}

	_, err := c.service.Objects.Insert(bucket, obj).
		Media(strings.NewReader(content)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to upload object %q to bucket %q: %w", name, bucket, err)
	}

	return nil
}
