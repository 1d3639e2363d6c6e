package impl

import (
	"context"
	"log/slog"
	"strings"

	"provenance/config"
	deliverycontext "provenance/internal/delivery/context"
	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/repository"
	"provenance/internal/domain/service"
	"provenance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// recordService implements the RecordUsecase interface.
type recordService struct {
	recordRepo    repository.RecordRepository
	qrcode        service.QRCodeService
	publicBaseURL string
	logger        *slog.Logger
}

// RecordServiceParams holds dependencies for RecordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	RecordRepo repository.RecordRepository
	QRCode     service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		recordRepo:    params.RecordRepo,
		qrcode:        params.QRCode,
		publicBaseURL: strings.TrimRight(params.Config.Env.PublicBaseURL, "/"),
		logger:        params.Logger,
	}
}

func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRecord retrieves one record, optionally with its verification history.
func (srv *recordService) GetRecord(ctx context.Context, recordID uuid.UUID, withVerifications bool) (*entity.AuthenticatedRecord, error) {
	record, err := srv.recordRepo.FindByID(ctx, recordID, withVerifications)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WrapMessage(recordID.String())
		}

		return nil, errors.Wrap(err, "failed to find record")
	}

	return record, nil
}

// ListRecords returns one page of records, newest first.
func (srv *recordService) ListRecords(ctx context.Context, input *usecase.ListRecordsInput) (*usecase.RecordPage, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status " + string(input.Status))
	}

	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}
	offset := max(input.Offset, 0)

	records, total, err := srv.recordRepo.List(ctx, repository.RecordFilter{
		OwnerID: input.OwnerID,
		Status:  input.Status,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list records", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list records")
	}

	return &usecase.RecordPage{
		Records: records,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// GetCertificateQR renders the certificate QR code of an existing record.
func (srv *recordService) GetCertificateQR(ctx context.Context, recordID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetRecord(ctx, recordID, false); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateRecordQR(recordID, srv.publicBaseURL+"/api/v1/records/"+recordID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate certificate QR code")
	}

	return png, nil
}
