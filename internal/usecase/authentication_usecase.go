// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"provenance/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitInput is one image submitted for authentication.
type SubmitInput struct {
	OwnerID     uuid.UUID
	SessionID   string
	Image       []byte
	ContentType string
}

// VerifyInput is a query image checked against the registered corpus.
type VerifyInput struct {
	// VerifierID is nil for anonymous verifications
	VerifierID  *uuid.UUID
	Image       []byte
	ContentType string
}

// --- Output DTOs ---

// VerificationMatch is one registered record the query image matched.
type VerificationMatch struct {
	Record *entity.AuthenticatedRecord `json:"record"`
	Score  float64                     `json:"score"`
}

// VerifyResult lists every match at or above the similarity threshold.
type VerifyResult struct {
	Found     bool                     `json:"found"`
	Matches   []*VerificationMatch     `json:"matches"`
	Watermark *entity.WatermarkPayload `json:"watermark,omitempty"`
}

// AuthenticationUsecase registers new images and verifies query images against the corpus.
type AuthenticationUsecase interface {
	// Submit fingerprints and watermarks the image, rejects near-duplicates,
	// stores the record in status uploaded and enqueues the mint step.
	Submit(ctx context.Context, input *SubmitInput) (*entity.AuthenticatedRecord, error)
	// Verify records one verification row per match. No match is not an error.
	Verify(ctx context.Context, input *VerifyInput) (*VerifyResult, error)
}
