package entity

import (
	"time"

	"github.com/google/uuid"
)

// Verification is one similarity match recorded when a query image is checked against the corpus.
type Verification struct {
	ID         uuid.UUID  `json:"id"`
	ImageID    uuid.UUID  `json:"image_id"`
	VerifierID *uuid.UUID `json:"verifier_id,omitempty"`
	Score      float64    `json:"score"`
	CreatedAt  time.Time  `json:"created_at"`
}
