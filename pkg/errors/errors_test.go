package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, ErrStorage.Code, ErrStorage.Message)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, HasCode(err, ErrStorage))
}

func TestHasCodeThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("resolving session: %w", ErrNoSession)

	assert.True(t, HasCode(err, ErrNoSession))
	assert.False(t, HasCode(err, ErrTimeout))
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	plain := stderrors.New("boom")
	converted := FromError(plain)
	assert.Equal(t, ErrInternal.Code, converted.Code)
	assert.ErrorIs(t, converted, plain)

	typed := FromError(ErrNetwork)
	assert.Equal(t, ErrNetwork.Code, typed.Code)
}

func TestCloneOverridesMessageOnly(t *testing.T) {
	clone := Clone(ErrValidation, "studentId must be set")

	assert.Equal(t, ErrValidation.Code, clone.Code)
	assert.Equal(t, "studentId must be set", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
}
