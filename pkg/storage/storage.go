package storage

import (
	"context"
	"io"
)

// ImageStorage defines the contract for image storage providers.
type ImageStorage interface {
	// UploadImage uploads image from reader and returns the public URL.
	// folder is an optional logical folder in storage (e.g. "posts").
	UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// DeleteImage deletes image from storage using its URL.
	DeleteImage(ctx context.Context, fileURL string) error
}
