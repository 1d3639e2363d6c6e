package errors

import (
	"fmt"
	"net/http"

	"provenance/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by WithDetails still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Pipeline errors
	ErrDuplicateContent = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CONTENT",
		"A sufficiently similar image is already registered",
		"",
	)

	ErrProcessingFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"PROCESSING_FAILED",
		"The image could not be processed",
		"",
	)

	ErrPreconditionFailed = NewBaseError(
		http.StatusConflict,
		"PRECONDITION_FAILED",
		"The record is not in a state that allows this action",
		"",
	)

	ErrExternalCallFailed = NewBaseError(
		http.StatusBadGateway,
		"EXTERNAL_CALL_FAILED",
		"An upstream service call failed",
		"",
	)

	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"Record not found",
		"",
	)

	ErrRecordBusy = NewBaseError(
		http.StatusServiceUnavailable,
		"RECORD_BUSY",
		"Another step is in progress for this record",
		"",
	)

	// Upload errors
	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"Only image uploads are accepted",
		"",
	)

	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PAYLOAD_TOO_LARGE",
		"The uploaded image exceeds the size limit",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrNonceInvalid = NewBaseError(
		http.StatusUnauthorized,
		"NONCE_INVALID",
		"Invalid or expired login challenge",
		"",
	)

	ErrSignatureInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SIGNATURE_INVALID",
		"Wallet signature verification failed",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired session",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// DuplicateContentError reports the existing record a submission collided with.
type DuplicateContentError struct {
	MatchID string
	Score   float64
}

// NewDuplicateContentError creates a duplicate error for the best match.
func NewDuplicateContentError(matchID string, score float64) *DuplicateContentError {
	return &DuplicateContentError{MatchID: matchID, Score: score}
}

func (e *DuplicateContentError) Error() string {
	if e.MatchID == "" {
		return "duplicate content"
	}

	return fmt.Sprintf("duplicate content: matches %s (score %.4f)", e.MatchID, e.Score)
}

func (e *DuplicateContentError) Is(target error) bool { return target == ErrDuplicateContent }
func (e *DuplicateContentError) HTTPCode() int        { return ErrDuplicateContent.HTTPCode() }
func (e *DuplicateContentError) ErrorCode() string    { return ErrDuplicateContent.ErrorCode() }
func (e *DuplicateContentError) Message() string      { return ErrDuplicateContent.Message() }
func (e *DuplicateContentError) Details() string      { return e.MatchID }

// ProcessingError reports that a local processing stage failed on the input.
type ProcessingError struct {
	Stage string
	err   error
}

// NewProcessingError wraps err for the named stage.
func NewProcessingError(stage string, err error) *ProcessingError {
	return &ProcessingError{Stage: stage, err: err}
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.err)
}

func (e *ProcessingError) Unwrap() error        { return e.err }
func (e *ProcessingError) Is(target error) bool { return target == ErrProcessingFailed }
func (e *ProcessingError) HTTPCode() int        { return ErrProcessingFailed.HTTPCode() }
func (e *ProcessingError) ErrorCode() string    { return ErrProcessingFailed.ErrorCode() }
func (e *ProcessingError) Message() string      { return ErrProcessingFailed.Message() }
func (e *ProcessingError) Details() string      { return e.Stage }

// PreconditionError reports a lifecycle action attempted from the wrong state.
type PreconditionError struct {
	RecordID string
	Action   string
	Status   string
}

// NewPreconditionError creates a precondition error.
func NewPreconditionError(recordID, action, status string) *PreconditionError {
	return &PreconditionError{RecordID: recordID, Action: action, Status: status}
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot %s record %s in status %q", e.Action, e.RecordID, e.Status)
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPreconditionFailed }
func (e *PreconditionError) HTTPCode() int        { return ErrPreconditionFailed.HTTPCode() }
func (e *PreconditionError) ErrorCode() string    { return ErrPreconditionFailed.ErrorCode() }
func (e *PreconditionError) Message() string      { return ErrPreconditionFailed.Message() }
func (e *PreconditionError) Details() string      { return e.Status }

// ExternalCallError names the collaborator whose call failed.
type ExternalCallError struct {
	Collaborator string
	err          error
}

// NewExternalCallError wraps err from collaborator.
func NewExternalCallError(collaborator string, err error) *ExternalCallError {
	return &ExternalCallError{Collaborator: collaborator, err: err}
}

func (e *ExternalCallError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Collaborator, e.err)
}

func (e *ExternalCallError) Unwrap() error        { return e.err }
func (e *ExternalCallError) Is(target error) bool { return target == ErrExternalCallFailed }
func (e *ExternalCallError) HTTPCode() int        { return ErrExternalCallFailed.HTTPCode() }
func (e *ExternalCallError) ErrorCode() string    { return ErrExternalCallFailed.ErrorCode() }
func (e *ExternalCallError) Message() string      { return ErrExternalCallFailed.Message() }
func (e *ExternalCallError) Details() string      { return e.Collaborator }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
