package service

import (
	"context"
	"time"
)

// MintRequest registers an authenticated image on the ledger.
type MintRequest struct {
	RecordID     string
	Owner        string // wallet address
	ImageRef     string
	WatermarkRef string
	MetadataRef  string
	ContentHash  string
}

// ListingRequest creates a marketplace listing for a minted token.
type ListingRequest struct {
	TokenID   string
	Owner     string
	MinBid    uint64
	ExpiresAt time.Time
}

// LedgerReceipt is the outcome of a submitted transaction.
type LedgerReceipt struct {
	Digest string // transaction signature
	ID     string // token or listing id emitted by the transaction
}

// Ledger submits the two transaction shapes the lifecycle needs.
type Ledger interface {
	Mint(ctx context.Context, req *MintRequest) (*LedgerReceipt, error)
	CreateListing(ctx context.Context, req *ListingRequest) (*LedgerReceipt, error)
}
