package errors

import (
	"net/http"
	"testing"

	"provenance/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrRecordNotFound.WithDetails("abc")

	assert.True(t, errors.Is(detailed, ErrRecordNotFound))
	assert.True(t, errors.Is(ErrRecordNotFound.WrapMessage("lookup"), ErrRecordNotFound))
	assert.False(t, errors.Is(detailed, ErrUserNotFound))
}

func TestTypedErrors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel *BaseError
		code     int
	}{
		{name: "duplicate", err: NewDuplicateContentError("rec-1", 0.93), sentinel: ErrDuplicateContent, code: http.StatusConflict},
		{name: "processing", err: NewProcessingError("fingerprint", cause), sentinel: ErrProcessingFailed, code: http.StatusUnprocessableEntity},
		{name: "precondition", err: NewPreconditionError("rec-1", "mint", "minted"), sentinel: ErrPreconditionFailed, code: http.StatusConflict},
		{name: "external call", err: NewExternalCallError("ledger", cause), sentinel: ErrExternalCallFailed, code: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := errors.Wrap(tt.err, "context")
			assert.True(t, errors.Is(wrapped, tt.sentinel))

			var appErr AppError
			assert.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, tt.code, appErr.HTTPCode())
			assert.Equal(t, tt.sentinel.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestExternalCallError_UnwrapsCause(t *testing.T) {
	cause := errors.New("rpc timeout")
	err := NewExternalCallError("ledger", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "ledger")
}
