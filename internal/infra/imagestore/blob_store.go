// Package imagestore keeps menu images in a gocloud.dev blob bucket.
package imagestore

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"dabeli/config"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

const keyPrefix = "menu/"

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the image store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.ImageStore
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("imageStore.bucketURL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStore wraps an open bucket.
func NewBlobStore(bucket *blob.Bucket, publicBaseURL string) service.ImageStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload stores data under menu/<uuid><ext> and returns its public URL.
func (s *blobStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := keyPrefix + uuid.NewString() + strings.ToLower(path.Ext(filename))

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	}); err != nil {
		return "", errors.Wrap(err, "failed to write image")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Open streams a stored image.
func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(key, keyPrefix) {
		return nil, "", domainerrors.ErrNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrNotFound
		}

		return nil, "", errors.Wrap(err, "failed to open image")
	}

	return reader, reader.ContentType(), nil
}

// Delete removes an image by its public URL. URLs from elsewhere are ignored.
func (s *blobStore) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

func (s *blobStore) keyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !ok || !strings.HasPrefix(key, keyPrefix) {
		return "", false
	}

	return key, true
}
