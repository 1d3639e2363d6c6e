package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"provenance/config"
	"provenance/internal/domain/repository"
	mockRepo "provenance/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Similarity:     &config.SimilarityConfig{Threshold: 0.85, Limit: 10},
		Upload:         &config.UploadConfig{MaxBytes: 5 << 20},
		Lifecycle:      &config.LifecycleConfig{ClaimLease: 2 * time.Minute},
		Listing:        &config.ListingConfig{MinBid: 1_000_000, Expiry: 7 * 24 * time.Hour},
		Reconciliation: &config.ReconciliationConfig{Enabled: true, Interval: time.Minute, BatchSize: 10, MaxAttempts: 5, Backoff: 3 * time.Second},
		Session:        &config.SessionConfig{TTL: 24 * time.Hour, NonceTTL: 5 * time.Minute, BcryptCost: 4},
	}
	cfg.Env.PublicBaseURL = "https://provenance.example.com"

	return cfg
}

// expectTransaction runs every Execute callback against factory and returns its result.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
