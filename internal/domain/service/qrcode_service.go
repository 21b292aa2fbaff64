package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for vendor profile QR codes.
type QRCodeService interface {
	// GenerateProfileQR generates a QR code PNG linking to the vendor's
	// public profile page.
	GenerateProfileQR(vendorID uuid.UUID) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the vendor ID.
	ParseProfileQR(qrData string) (uuid.UUID, error)
}
