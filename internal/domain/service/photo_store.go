package service

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// PhotoStore defines the interface for vendor profile photo storage.
type PhotoStore interface {
	// SavePhoto stores the photo under the vendor's key and returns the
	// public URL to record on the vendor row.
	SavePhoto(ctx context.Context, vendorID uuid.UUID, contentType string, r io.Reader) (string, error)
}
