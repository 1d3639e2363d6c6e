package usecase

import (
	"context"

	"provenance/internal/domain/entity"

	"github.com/google/uuid"
)

// ListRecordsInput filters a page of records.
type ListRecordsInput struct {
	OwnerID *uuid.UUID
	Status  entity.RecordStatus
	Limit   int
	Offset  int
}

// RecordPage is one page of records.
type RecordPage struct {
	Records []*entity.AuthenticatedRecord `json:"records"`
	Total   int64                         `json:"total"`
	Limit   int                           `json:"limit"`
	Offset  int                           `json:"offset"`
}

// RecordUsecase defines the read side of authenticated records.
type RecordUsecase interface {
	GetRecord(ctx context.Context, recordID uuid.UUID, withVerifications bool) (*entity.AuthenticatedRecord, error)
	ListRecords(ctx context.Context, input *ListRecordsInput) (*RecordPage, error)
	// GetCertificateQR renders a QR code pointing at the public record URL.
	GetCertificateQR(ctx context.Context, recordID uuid.UUID) ([]byte, error)
}
