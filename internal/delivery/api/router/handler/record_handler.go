package handler

import (
	"context"
	"log/slog"
	"net/http"

	"provenance/internal/delivery/api/response"
	deliverycontext "provenance/internal/delivery/context"
	"provenance/internal/domain/entity"
	"provenance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecordHandlerParams holds dependencies for RecordHandler, injected by Fx.
type RecordHandlerParams struct {
	fx.In

	RecordUC    usecase.RecordUsecase
	LifecycleUC usecase.LifecycleUsecase
	Logger      *slog.Logger
}

// RecordHandler serves authenticated records and their lifecycle actions
type RecordHandler struct {
	recordUC    usecase.RecordUsecase
	lifecycleUC usecase.LifecycleUsecase
	logger      *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler
func NewRecordHandler(params RecordHandlerParams) *RecordHandler {
	return &RecordHandler{
		recordUC:    params.RecordUC,
		lifecycleUC: params.LifecycleUC,
		logger:      params.Logger,
	}
}

// GetRecordRequest binds the record read parameters
type GetRecordRequest struct {
	ID            string `param:"id" validate:"required,uuid"`
	Verifications bool   `query:"verifications"`
}

// ListRecordsRequest binds the record listing parameters
type ListRecordsRequest struct {
	Mine   bool   `query:"mine"`
	Status string `query:"status" validate:"omitempty,oneof=uploaded minted soft-listed listed error"`
	Limit  int    `query:"limit" validate:"gte=0"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// LifecycleAcceptedResponse acknowledges an enqueued lifecycle step
type LifecycleAcceptedResponse struct {
	RecordID string                 `json:"record_id"`
	Action   entity.LifecycleAction `json:"action"`
	Status   string                 `json:"status"`
}

// GetRecord returns one record, optionally with its verification history
func (h *RecordHandler) GetRecord(c echo.Context) error {
	var req GetRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.recordUC.GetRecord(c.Request().Context(), uuid.MustParse(req.ID), req.Verifications)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// ListRecords returns a page of records, the caller's own with ?mine=true
func (h *RecordHandler) ListRecords(c echo.Context) error {
	var req ListRecordsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ListRecordsInput{
		Status: entity.RecordStatus(req.Status),
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.Mine {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required to list own records")
		}
		input.OwnerID = &identity.UserID
	}

	page, err := h.recordUC.ListRecords(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetCertificateQR renders the record's certificate QR code as PNG
func (h *RecordHandler) GetCertificateQR(c echo.Context) error {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_RECORD_ID", "Invalid record ID format")
	}

	png, err := h.recordUC.GetCertificateQR(c.Request().Context(), recordID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// RequestMint enqueues the mint step
func (h *RecordHandler) RequestMint(c echo.Context) error {
	return h.requestAction(c, entity.ActionMint, h.lifecycleUC.RequestMint)
}

// RequestSoftList enqueues the soft-list step
func (h *RecordHandler) RequestSoftList(c echo.Context) error {
	return h.requestAction(c, entity.ActionSoftList, h.lifecycleUC.RequestSoftList)
}

// Redrive re-enqueues the step that moved the record to error
func (h *RecordHandler) Redrive(c echo.Context) error {
	identity, recordID, ok, err := h.ownerAndRecord(c)
	if !ok {
		return err
	}

	action, err := h.lifecycleUC.Redrive(c.Request().Context(), identity, recordID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c, &LifecycleAcceptedResponse{
		RecordID: recordID.String(),
		Action:   action,
		Status:   "accepted",
	})
}

// Confirm marks a soft-listed record as listed
func (h *RecordHandler) Confirm(c echo.Context) error {
	identity, recordID, ok, err := h.ownerAndRecord(c)
	if !ok {
		return err
	}

	record, err := h.lifecycleUC.Confirm(c.Request().Context(), identity, recordID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

type lifecycleRequestFunc func(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) error

func (h *RecordHandler) requestAction(c echo.Context, action entity.LifecycleAction, request lifecycleRequestFunc) error {
	identity, recordID, ok, err := h.ownerAndRecord(c)
	if !ok {
		return err
	}

	if err := request(c.Request().Context(), identity, recordID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c, &LifecycleAcceptedResponse{
		RecordID: recordID.String(),
		Action:   action,
		Status:   "accepted",
	})
}

// ownerAndRecord resolves the caller and path record. When ok is false the response has been written.
func (h *RecordHandler) ownerAndRecord(c echo.Context) (*entity.Identity, uuid.UUID, bool, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, uuid.Nil, false, response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, uuid.Nil, false, response.BadRequest(c, "INVALID_RECORD_ID", "Invalid record ID format")
	}

	return identity, recordID, true, nil
}
