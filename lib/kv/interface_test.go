package kv

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := NewError(ErrCInvalidKey, "key must not be blank")
	assert.Equal(t, "KVStoreError (code InvalidKey): key must not be blank", err.Error())
}

func TestWrapIOError(t *testing.T) {
	cause := fs.ErrPermission
	err := WrapIOError("failed to write entry", cause)

	assert.Equal(t, ErrCIO, err.Code)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "failed to write entry")
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(NewError(ErrCKeyNotFound, "no entry"))
	assert.True(t, ok)
	assert.Equal(t, ErrCKeyNotFound, code)

	_, ok = CodeOf(errors.New("some other error"))
	assert.False(t, ok)

	_, ok = CodeOf(nil)
	assert.False(t, ok)
}

func TestErrCodeString(t *testing.T) {
	assert.Equal(t, "KeyNotFound", ErrCKeyNotFound.String())
	assert.Equal(t, "IO", ErrCIO.String())
	assert.Equal(t, "InvalidKey", ErrCInvalidKey.String())
	assert.Equal(t, "ClosedStore", ErrCClosedStore.String())
	assert.Equal(t, "Unknown", ErrCode(99).String())
}
