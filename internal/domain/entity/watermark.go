package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// WatermarkPayload is the provenance statement embedded invisibly into a derivative image.
type WatermarkPayload struct {
	Creator      string    `json:"creator"`
	Timestamp    time.Time `json:"timestamp"`
	Nonce        string    `json:"nonce"`
	OriginalHash string    `json:"originalHash"`
	Version      string    `json:"version"`
}

// ContentHash returns the SHA-256 hex digest of data. Records and watermark payloads both carry it.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}
