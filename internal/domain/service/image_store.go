package service

import (
	"context"
	"io"
)

// ImageStore keeps uploaded menu images and returns a URL clients can load.
type ImageStore interface {
	// Upload stores data under a generated key and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)

	// Open streams a stored image by key, returning its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes an image previously returned by Upload. Unknown URLs are ignored.
	Delete(ctx context.Context, url string) error
}
