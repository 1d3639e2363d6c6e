package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	require.NotNil(t, cfg.Similarity)
	assert.InDelta(t, 0.85, cfg.Similarity.Threshold, 1e-9)
	assert.Equal(t, 10, cfg.Similarity.Limit)

	require.NotNil(t, cfg.Reconciliation)
	assert.True(t, cfg.Reconciliation.Enabled)
	assert.Equal(t, time.Minute, cfg.Reconciliation.Interval)
	assert.Equal(t, 10, cfg.Reconciliation.BatchSize)
	assert.Equal(t, 5, cfg.Reconciliation.MaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.Reconciliation.Backoff)

	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "images", cfg.Qdrant.Collection)
	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.NonceTTL)
	assert.Equal(t, 2*time.Minute, cfg.Lifecycle.ClaimLease)
	assert.Equal(t, uint64(1_000_000), cfg.Listing.MinBid)
	assert.Equal(t, 7*24*time.Hour, cfg.Listing.Expiry)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Similarity:     &SimilarityConfig{Threshold: 0.92, Limit: 3},
		Reconciliation: &ReconciliationConfig{Enabled: false, BatchSize: 25, MaxAttempts: 2, Backoff: time.Second},
	}

	ApplyDefaults(cfg)

	assert.InDelta(t, 0.92, cfg.Similarity.Threshold, 1e-9)
	assert.Equal(t, 3, cfg.Similarity.Limit)
	assert.False(t, cfg.Reconciliation.Enabled)
	assert.Equal(t, 25, cfg.Reconciliation.BatchSize)
	assert.Equal(t, 2, cfg.Reconciliation.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Reconciliation.Backoff)
}

func TestApplyDefaults_OutOfRangeThreshold(t *testing.T) {
	cfg := &Config{Similarity: &SimilarityConfig{Threshold: 1.5}}

	ApplyDefaults(cfg)

	assert.InDelta(t, 0.85, cfg.Similarity.Threshold, 1e-9)
}
