// Package storage keeps offer images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"strings"

	"localdeal/config"
	"localdeal/internal/domain/service"
	"localdeal/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured bucket. Supported schemes: file://, mem:// and gs://.
func New(ctx context.Context, params Params) (service.ImageStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url is required")
	}

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, params.Config.Storage.PublicBaseURL), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.ImageStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if key == "" {
		return "", errors.New("object key is empty")
	}

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		metrics.ImageUploads.WithLabelValues(metrics.ResultError).Inc()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}
	metrics.ImageUploads.WithLabelValues(metrics.ResultSuccess).Inc()

	return s.publicURL(key), nil
}

func (s *blobStorage) Download(ctx context.Context, key string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, "", s.translate(err, key)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", s.translate(err, key)
	}

	return data, attrs.ContentType, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return s.translate(err, key)
	}

	return nil
}

func (s *blobStorage) KeyFromURL(publicURL string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if publicURL == "" || !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(publicURL, prefix)
	if key == "" {
		return "", false
	}

	return key, true
}

func (s *blobStorage) publicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

func (s *blobStorage) translate(err error, key string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrapf(service.ErrImageNotFound, "object %s", key)
	}

	return errors.Wrapf(err, "bucket operation on %s failed", key)
}
