package qrcode

import (
	"encoding/json"
	"fmt"

	"provenance/config"
	"provenance/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultQRSize       = 256
	recordCertificateQR = "record_certificate"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the payload encoded in a record certificate
type QRCodeData struct {
	RecordID string `json:"record_id"`
	URL      string `json:"url"`
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

	if size <= 0 {
		size = defaultQRSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultQRSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateRecordQR generates a PNG certificate QR code for a record
func (s *qrcodeService) GenerateRecordQR(recordID uuid.UUID, recordURL string) ([]byte, error) {
	data := QRCodeData{
		RecordID: recordID.String(),
		URL:      recordURL,
		Type:     recordCertificateQR,
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

// ParseRecordQR parses QR code data and returns the record ID
func (s *qrcodeService) ParseRecordQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != recordCertificateQR {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	recordID, err := uuid.Parse(data.RecordID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse record ID: %w", err)
	}

	return recordID, nil
}
