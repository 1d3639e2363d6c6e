// Package service defines interfaces for core, stateless domain logic and external collaborators.
package service

import (
	"context"

	"provenance/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrWatermarkNotFound is returned by Extract when the image carries no readable payload.
var ErrWatermarkNotFound = errors.New("watermark not found")

// Fingerprint is the content identity of one image.
type Fingerprint struct {
	Vector         []float32
	ContentHash    string // SHA-256 hex of the original bytes
	PerceptualHash string // average hash
}

// EmbeddingService turns image bytes into a fixed-length vector.
type EmbeddingService interface {
	Embed(ctx context.Context, image []byte, contentType string) ([]float32, error)
}

// FingerprintExtractor computes the fingerprint of raw image bytes.
type FingerprintExtractor interface {
	Extract(ctx context.Context, image []byte, contentType string) (*Fingerprint, error)
}

// WatermarkEmbedder writes and reads the invisible provenance payload.
type WatermarkEmbedder interface {
	// Embed returns a PNG derivative of image carrying payload.
	Embed(image []byte, payload *entity.WatermarkPayload) ([]byte, error)

	// Extract recovers the payload, or ErrWatermarkNotFound.
	Extract(image []byte) (*entity.WatermarkPayload, error)
}
