// Package storage persists vendor profile photos in a blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pushcart/internal/domain/service"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
)

type blobPhotoStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobPhotoStore opens the bucket named by bucketURL (gs://, file://,
// mem://) and serves saved photos under publicBaseURL.
func NewBlobPhotoStore(ctx context.Context, bucketURL, publicBaseURL string) (service.PhotoStore, func() error, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open photo bucket: %w", err)
	}

	store := &blobPhotoStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}

	return store, bucket.Close, nil
}

// SavePhoto writes the photo under a per-vendor key and returns its public URL.
// Re-uploading overwrites the previous photo, so a vendor always has one.
func (s *blobPhotoStore) SavePhoto(ctx context.Context, vendorID uuid.UUID, contentType string, r io.Reader) (string, error) {
	key := photoKey(vendorID, contentType)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open photo writer: %w", err)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to commit photo: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// photoKey maps a vendor to a stable object key with a type-derived extension.
func photoKey(vendorID uuid.UUID, contentType string) string {
	ext := ".jpg"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	}

	return "vendors/" + vendorID.String() + "/photo" + ext
}
