package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewMissionValidationFailedError("personnel: array must have at least 1 items")
	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "MISSION_VALIDATION_FAILED", bpmnErr.Code)
	assert.Equal(t, "Mission data validation failed", bpmnErr.Message)
	assert.Equal(t, 0, bpmnErr.Retries)
	assert.False(t, bpmnErr.Retryable)

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, "MISSION_VALIDATION_FAILED", vars["errorCode"])
	assert.Equal(t, "MISSION_VALIDATION_FAILED", vars["originalErrorCode"])
	assert.Contains(t, vars, "timestamp")
}

func TestConvertToBPMNError_UnmappedCodeFallsBack(t *testing.T) {
	bpmnErr := ConvertToBPMNError(&StandardError{Code: "SOMETHING_NEW", Message: "x"})
	assert.Equal(t, "SOMETHING_NEW", bpmnErr.Code)
}

func TestNormalize(t *testing.T) {
	stdErr := NewUnsupportedExportFormatError("pdf")
	assert.Same(t, stdErr, Normalize(stdErr))

	wrapped := fmt.Errorf("export: %w", stdErr)
	assert.Same(t, stdErr, Normalize(wrapped))

	other := Normalize(fmt.Errorf("boom"))
	assert.Equal(t, ErrCodeInternal, other.Code)
	assert.Equal(t, "boom", other.Details)
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeMissionValidationFailed, "VALIDATION"},
		{ErrCodeParseError, "VALIDATION"},
		{ErrCodeExportFailed, "EXPORT"},
		{ErrCodeExportFormatUnsupported, "EXPORT"},
		{ErrCodeInternal, "OTHER"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorCategory(tt.code))
		})
	}
}

func TestNoAutomaticRetries(t *testing.T) {
	for code := range BPMNErrorMapping {
		assert.Equal(t, 0, GetRetryCount(code), string(code))
	}
}

func TestStandardError_Error(t *testing.T) {
	err := NewExportFailedError("xlsx", fmt.Errorf("disk full"))
	assert.Equal(t, "StandardError[EXPORT_FAILED]: Quotation export failed", err.Error())
	assert.Equal(t, "format: xlsx, error: disk full", err.Details)
}
