package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type localStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage stores images on the local filesystem under dir and
// serves them as baseURL + "/uploads/<name>". Used when no Cloudinary
// credentials are configured.
func NewLocalStorage(dir, baseURL string) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &localStorage{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *localStorage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	// Timestamped name avoids collisions between same-named uploads.
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(fileName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}

func (s *localStorage) DeleteImage(ctx context.Context, fileURL string) error {
	prefix := s.baseURL + "/uploads/"
	if !strings.HasPrefix(fileURL, prefix) {
		return fmt.Errorf("file URL %s is not served from local storage", fileURL)
	}

	name := filepath.Base(strings.TrimPrefix(fileURL, prefix))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete upload file: %w", err)
	}

	return nil
}
