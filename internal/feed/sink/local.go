package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local writes artifacts into a directory on disk. Meant for development;
// the content type is carried by the file extension only.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

func (s *Local) Put(ctx context.Context, name, content, contentType string) error {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
