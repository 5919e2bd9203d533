// utils/blob.go
package utils

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"

	"github.com/ediestyles/closet_backend/apperr"
)

const blobOpTimeout = 30 * time.Second

// BlobStore persists item images and hands back their public URLs.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// GCSBlobStore stores blobs in a Google Cloud Storage bucket.
type GCSBlobStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewGCSBlobStore(bucket *storage.BucketHandle, bucketName string) *GCSBlobStore {
	return &GCSBlobStore{bucket: bucket, bucketName: bucketName}
}

// Put uploads the blob under key and returns its public URL.
func (s *GCSBlobStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, blobOpTimeout)
	defer cancel()

	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = "image/png"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", apperr.Unavailable("error uploading file to storage: %v", err)
	}
	if err := w.Close(); err != nil {
		return "", apperr.Unavailable("error uploading file to storage: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, key), nil
}

// Delete removes the blob under key. Missing blobs are not an error.
func (s *GCSBlobStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, blobOpTimeout)
	defer cancel()

	if err := s.bucket.Object(key).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		return apperr.Unavailable("error deleting file from storage: %v", err)
	}
	return nil
}

// ItemBlobKeys builds the storage keys for an item's full image and its
// thumbnail. The prefix namespaces keys per environment.
func ItemBlobKeys(prefix, fileID string) (full, small string) {
	full = fmt.Sprintf("%sitems/%s/full.png", prefix, fileID)
	small = fmt.Sprintf("%sitems/%s/small.png", prefix, fileID)
	return full, small
}
