package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	msgs   []string
	fields []map[string]interface{}
}

func (r *recordingLogger) Error(msg string, fields map[string]interface{}) {
	r.msgs = append(r.msgs, msg)
	r.fields = append(r.fields, fields)
}

func TestStandardError_ErrorAndUnwrap(t *testing.T) {
	cause := stderrors.New("no such file or directory")
	err := NewFileLoadFailedError("services.json", cause)

	assert.Equal(t, ErrCodeFileLoadFailed, err.Code)
	assert.Equal(t, "cannot read services.json: no such file or directory", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "services.json", err.Metadata["path"])
}

func TestAsStandardError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, AsStandardError(nil))
	})

	t.Run("wrapped standard error is found", func(t *testing.T) {
		inner := NewInvalidJSONError("schema.json", stderrors.New("unexpected EOF"))
		wrapped := fmt.Errorf("load schema: %w", inner)

		got := AsStandardError(wrapped)
		require.NotNil(t, got)
		assert.Same(t, inner, got)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := AsStandardError(stderrors.New("boom"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.Equal(t, "boom", got.Details)
	})
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewValidationFailedError(3))
	assert.True(t, HasCode(err, ErrCodeValidationFailed))
	assert.False(t, HasCode(err, ErrCodeInvalidJSON))
	assert.False(t, HasCode(stderrors.New("x"), ErrCodeValidationFailed))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(NewValidationFailedError(1)))
	assert.Equal(t, 1, ExitCode(stderrors.New("anything")))
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeFileLoadFailed, "LOAD"},
		{ErrCodeInvalidJSON, "LOAD"},
		{ErrCodeValidationFailed, "VALIDATION"},
		{ErrCodeConfigInvalid, "CONFIG"},
		{ErrCodePublishFailed, "PUBLISH"},
		{ErrCodeInternal, "OTHER"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCategory(tt.code))
		})
	}
}

func TestErrorHandler_HandleRunError(t *testing.T) {
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	assert.Equal(t, 0, h.HandleRunError("run-1", nil))
	assert.Empty(t, log.msgs)

	code := h.HandleRunError("run-2", NewInvalidJSONError("services.json", stderrors.New("bad")))
	assert.Equal(t, 1, code)
	require.Len(t, log.fields, 1)
	assert.Equal(t, "run-2", log.fields[0]["runId"])
	assert.Equal(t, "INVALID_JSON", log.fields[0]["errorCode"])
	assert.Equal(t, "LOAD", log.fields[0]["errorCategory"])
	assert.Equal(t, "services.json", log.fields[0]["path"])
}
