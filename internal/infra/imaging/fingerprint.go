// Package imaging computes image fingerprints and embeds the invisible provenance watermark.
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/service"
	"provenance/internal/errors"

	"github.com/corona10/goimagehash"
	_ "golang.org/x/image/webp"
)

type fingerprintExtractor struct {
	embedding service.EmbeddingService
}

// NewFingerprintExtractor creates a new fingerprint extractor backed by the embedding service
func NewFingerprintExtractor(embedding service.EmbeddingService) service.FingerprintExtractor {
	return &fingerprintExtractor{embedding: embedding}
}

// Extract decodes the image, hashes it and asks the embedding service for its vector.
// The image is decoded before the embedding call so corrupt uploads never leave the process.
func (e *fingerprintExtractor) Extract(ctx context.Context, data []byte, contentType string) (*service.Fingerprint, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, domainerrors.NewProcessingError("decode", err)
	}

	hash, err := goimagehash.AverageHash(img)
	if err != nil {
		return nil, domainerrors.NewProcessingError("perceptual_hash", errors.WithStack(err))
	}

	vector, err := e.embedding.Embed(ctx, data, contentType)
	if err != nil {
		return nil, domainerrors.NewProcessingError("embedding", err)
	}

	return &service.Fingerprint{
		Vector:         vector,
		ContentHash:    entity.ContentHash(data),
		PerceptualHash: fmt.Sprintf("%016x", hash.GetHash()),
	}, nil
}

func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	return img, nil
}
