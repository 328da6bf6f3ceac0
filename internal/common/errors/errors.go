package errors

import (
	"fmt"
	"strings"
	"time"
)

type ErrorCode string

const (
	ErrCodeParseError ErrorCode = "PARSE_ERROR"

	ErrCodeMissionValidationFailed ErrorCode = "MISSION_VALIDATION_FAILED"

	ErrCodeExportFormatUnsupported ErrorCode = "EXPORT_FORMAT_UNSUPPORTED"
	ErrCodeExportFailed            ErrorCode = "EXPORT_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError is the error shape reported by job handlers.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// BPMNError is what gets thrown to the process engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

func newError(code ErrorCode, message, details string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

func NewParseError(err error) *StandardError {
	return newError(ErrCodeParseError, "Job variables could not be parsed", err.Error())
}

func NewMissionValidationFailedError(details string) *StandardError {
	return newError(ErrCodeMissionValidationFailed, "Mission data validation failed", details)
}

func NewUnsupportedExportFormatError(format string) *StandardError {
	return newError(ErrCodeExportFormatUnsupported, "Unsupported export format", fmt.Sprintf("format: %s", format))
}

func NewExportFailedError(format string, err error) *StandardError {
	return newError(ErrCodeExportFailed, "Quotation export failed", fmt.Sprintf("format: %s, error: %s", format, err.Error()))
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error())
}

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeParseError:              "PARSE_ERROR",
	ErrCodeMissionValidationFailed: "MISSION_VALIDATION_FAILED",
	ErrCodeExportFormatUnsupported: "EXPORT_FORMAT_UNSUPPORTED",
	ErrCodeExportFailed:            "EXPORT_FAILED",
}

// GetRetryCount is zero for every code: nothing in this service is retried
// automatically, retry is offered by whoever drives the process.
func GetRetryCount(code ErrorCode) int {
	return 0
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   GetRetryCount(stdErr.Code),
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "PARSE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "EXPORT"):
		return "EXPORT"
	default:
		return "OTHER"
	}
}
