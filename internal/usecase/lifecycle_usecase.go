package usecase

import (
	"context"

	"provenance/internal/domain/entity"
	"provenance/internal/domain/service"

	"github.com/google/uuid"
)

// LifecycleUsecase advances authenticated records through mint, soft-list and listing.
type LifecycleUsecase interface {
	// RequestMint checks ownership and the mint precondition, then enqueues the step.
	RequestMint(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) error
	// RequestSoftList checks ownership and the soft-list precondition, then enqueues the step.
	RequestSoftList(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) error
	// Confirm moves an owned soft-listed record to listed.
	Confirm(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) (*entity.AuthenticatedRecord, error)
	// Redrive re-enqueues the action that moved a record to error.
	Redrive(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) (entity.LifecycleAction, error)

	// ExecuteTask runs one queued step. It is safe to call more than once for the same task.
	ExecuteTask(ctx context.Context, task *service.LifecycleTask) error
	Mint(ctx context.Context, recordID uuid.UUID) (*entity.AuthenticatedRecord, error)
	SoftList(ctx context.Context, recordID uuid.UUID) (*entity.AuthenticatedRecord, error)
}
