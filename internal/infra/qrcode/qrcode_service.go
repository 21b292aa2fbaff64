// Package qrcode renders vendor profile QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"pushcart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload.
type QRCodeData struct {
	VendorID string `json:"vendor_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProfileQR generates a PNG QR code linking to the vendor's profile.
func (s *qrcodeService) GenerateProfileQR(vendorID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		VendorID: vendorID.String(),
		Type:     "profile",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProfileQR parses QR code data and returns the vendor ID.
func (s *qrcodeService) ParseProfileQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "profile" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	vendorID, err := uuid.Parse(data.VendorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse vendor ID: %w", err)
	}

	return vendorID, nil
}
