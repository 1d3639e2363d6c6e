package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"provenance/config"
	"provenance/internal/delivery/api/response"
	deliverycontext "provenance/internal/delivery/context"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageFormField = "image"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	AuthUC usecase.AuthenticationUsecase
	Config *config.Config
	Logger *slog.Logger
}

// ImageHandler handles image submission and verification
type ImageHandler struct {
	authUC   usecase.AuthenticationUsecase
	maxBytes int64
	logger   *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		authUC:   params.AuthUC,
		maxBytes: params.Config.Upload.MaxBytes,
		logger:   params.Logger,
	}
}

// Submit registers an uploaded image for the caller
func (h *ImageHandler) Submit(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	data, contentType, err := h.readImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.authUC.Submit(c.Request().Context(), &usecase.SubmitInput{
		OwnerID:     identity.UserID,
		SessionID:   identity.SessionID.String(),
		Image:       data,
		ContentType: contentType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record)
}

// Verify checks an image against the registered corpus. Anonymous callers are allowed.
func (h *ImageHandler) Verify(c echo.Context) error {
	data, contentType, err := h.readImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.VerifyInput{
		Image:       data,
		ContentType: contentType,
	}
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		input.VerifierID = &identity.UserID
	}

	result, err := h.authUC.Verify(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// readImage reads the multipart image field, bounded by the upload limit.
func (h *ImageHandler) readImage(c echo.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("multipart field \"image\" is required")
	}
	if fileHeader.Size > h.maxBytes {
		return nil, "", domainerrors.ErrPayloadTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	if int64(len(data)) > h.maxBytes {
		return nil, "", domainerrors.ErrPayloadTooLarge
	}

	return data, contentTypeOf(fileHeader, data), nil
}

// contentTypeOf prefers the declared part type and sniffs the bytes when none was sent.
func contentTypeOf(fileHeader *multipart.FileHeader, data []byte) string {
	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	return contentType
}
