package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	vision "google.golang.org/api/vision/v1"
	"google.golang.org/api/option"
)

// Client wraps the Google Cloud Vision API service for text detection.
type Client struct {
	service    *vision.Service
	httpClient *http.Client // used to download image bytes
}

// NewClientFromCredentialsFile creates a Vision client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Vision client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, vision.CloudVisionScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenSource := config.TokenSource(ctx)
	svc, err := vision.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}

	return &Client{
		service:    svc,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// NewClientFromHTTP creates a Vision client from a pre-configured HTTP client.
// The same client is used for the API and for image downloads; tests use this
// to point everything at an httptest server.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := vision.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}
	return &Client{service: svc, httpClient: httpClient}, nil
}

// ExtractText downloads the image at imageURL and runs TEXT_DETECTION on its
// bytes. The source board blocks third-party fetches, so the bytes are
// submitted inline rather than by URI. Failures are returned as *OCRError.
func (c *Client) ExtractText(ctx context.Context, imageURL string) (string, error) {
	content, err := c.downloadImage(ctx, imageURL)
	if err != nil {
		return "", &OCRError{ImageURL: imageURL, Err: err}
	}

	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(content)},
				Features: []*vision.Feature{{Type: "TEXT_DETECTION"}},
			},
		},
	}

	resp, err := c.service.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", &OCRError{ImageURL: imageURL, Err: fmt.Errorf("annotate call failed: %w", err)}
	}

	if len(resp.Responses) == 0 {
		return "", &OCRError{ImageURL: imageURL, Err: fmt.Errorf("empty annotate response")}
	}

	r := resp.Responses[0]
	if r.Error != nil {
		return "", &OCRError{ImageURL: imageURL, Err: fmt.Errorf("annotate error: %s", r.Error.Message)}
	}

	if len(r.TextAnnotations) == 0 {
		return "No text found", nil
	}

	return strings.TrimSpace(r.TextAnnotations[0].Description), nil
}

func (c *Client) downloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
