package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errBusy    = New("busy")
	errMissing = New("missing")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errMissing, "load record")

	assert.True(t, IsAny(wrapped, errBusy, errMissing))
	assert.False(t, IsAny(wrapped, errBusy))
	assert.False(t, IsAny(wrapped))
	assert.False(t, IsAny(nil, errBusy))
}

func TestWrap_KeepsNilAndStack(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, Wrapf(nil, "noop %d", 1))

	err := WithStack(errBusy)
	assert.True(t, Is(err, errBusy))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsNilAndStack")
}

func TestJoin_SkipsNil(t *testing.T) {
	assert.NoError(t, Join(nil, nil))

	err := Join(nil, errBusy, errMissing)
	assert.True(t, Is(err, errBusy))
	assert.True(t, Is(err, errMissing))
}
