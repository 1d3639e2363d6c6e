package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for record certificate QR codes
type QRCodeService interface {
	// GenerateRecordQR generates a QR code pointing at the public record URL
	GenerateRecordQR(recordID uuid.UUID, recordURL string) ([]byte, error)

	// ParseRecordQR parses QR code data and returns the record ID
	ParseRecordQR(qrData string) (uuid.UUID, error)
}
