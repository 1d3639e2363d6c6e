package usecase

import "context"

// ReconciliationReport summarises one sweep.
type ReconciliationReport struct {
	Scanned  int
	Repaired int
	Failed   int
}

// ReconciliationUsecase backs up fingerprint vectors of ledger-confirmed records.
type ReconciliationUsecase interface {
	// RunOnce processes one batch. It never changes a record's status.
	RunOnce(ctx context.Context) (*ReconciliationReport, error)
}
