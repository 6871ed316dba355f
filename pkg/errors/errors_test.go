package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorFormatting(t *testing.T) {
	assert.Equal(t, "not_found: Developer not found", New(CodeNotFound, "Developer not found").Error())

	cause := errors.New("connection reset")
	wrapped := Wrap(cause, CodeInternal, "find developer failed")
	assert.Equal(t, "internal: find developer failed: connection reset", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)

	var nilErr *AppError
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestWrapNil(t *testing.T) {
	err := Wrap(nil, CodeInvalid, "bad input")
	assert.Nil(t, err.Err)
	assert.Equal(t, CodeInvalid, err.Code)
}

func TestCodeOfThroughWrapping(t *testing.T) {
	base := New(CodeAlreadyExists, "Developer with defined email is already exists")
	outer := fmt.Errorf("create developer: %w", base)

	assert.True(t, IsCode(outer, CodeAlreadyExists))
	assert.False(t, IsCode(outer, CodeNotFound))
	assert.Equal(t, "Developer with defined email is already exists", MessageOf(outer))

	plain := errors.New("boom")
	assert.Equal(t, CodeUnknown, CodeOf(plain))
	assert.Equal(t, "boom", MessageOf(plain))
	assert.Equal(t, "", MessageOf(nil))
}

func TestWithMeta(t *testing.T) {
	err := New(CodeNotFound, "Developer not found").WithMeta("id", 7)
	assert.Equal(t, 7, err.Meta["id"])
}
