package storage

import (
	"context"
	"testing"

	"localdeal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) service.ImageStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, "https://cdn.localdeal.app/images/")
}

func TestBlobStorage_UploadDownload(t *testing.T) {
	store := newMemStorage(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "offers/1700000000000_thali.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.localdeal.app/images/offers/1700000000000_thali.png", url)

	data, contentType, err := store.Download(ctx, "offers/1700000000000_thali.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestBlobStorage_Delete(t *testing.T) {
	store := newMemStorage(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, "offers/a.jpg", "image/jpeg", []byte("jpg"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "offers/a.jpg"))

	_, _, err = store.Download(ctx, "offers/a.jpg")
	assert.True(t, errors.Is(err, service.ErrImageNotFound))

	err = store.Delete(ctx, "offers/a.jpg")
	assert.True(t, errors.Is(err, service.ErrImageNotFound))
}

func TestBlobStorage_UploadEmptyKey(t *testing.T) {
	store := newMemStorage(t)

	_, err := store.Upload(context.Background(), "", "image/png", []byte("x"))
	assert.Error(t, err)
}

func TestBlobStorage_KeyFromURL(t *testing.T) {
	store := newMemStorage(t)

	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"own url", "https://cdn.localdeal.app/images/offers/a.jpg", "offers/a.jpg", true},
		{"foreign url", "https://example.com/offers/a.jpg", "", false},
		{"base only", "https://cdn.localdeal.app/images/", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := store.KeyFromURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}
