package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrImageNotFound is returned when an image key does not exist.
var ErrImageNotFound = errors.New("image not found")

// ImageStorage stores offer images and serves them under public URLs.
type ImageStorage interface {
	// Upload writes data under key and returns the public URL of the object.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Download returns the object stored under key and its content type.
	Download(ctx context.Context, key string) (data []byte, contentType string, err error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// KeyFromURL returns the object key behind a public URL produced by Upload.
	KeyFromURL(publicURL string) (string, bool)
}
