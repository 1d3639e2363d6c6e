package service

import "context"

// SimilarityMatch is one nearest-neighbour hit.
type SimilarityMatch struct {
	ID    string
	Score float64
}

// SimilarityIndex stores fingerprint vectors in a nearest-neighbour service.
type SimilarityIndex interface {
	Upsert(ctx context.Context, id string, vector []float32, payload map[string]any) error

	// Query returns up to limit matches scoring at least minScore, best first, skipping the
	// first offset of them. A page shorter than limit is the last one.
	Query(ctx context.Context, vector []float32, limit, offset int, minScore float64) ([]SimilarityMatch, error)

	// Retrieve returns the stored vectors keyed by id; missing ids are absent from the map.
	Retrieve(ctx context.Context, ids []string) (map[string][]float32, error)

	Delete(ctx context.Context, id string) error
}
