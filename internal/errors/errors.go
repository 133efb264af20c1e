// Package errors defines stable error codes for the tool's failure modes.
// Persistence and import failures are reported through these instead of
// raw errors so the CLI can suggest a recovery action.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// StorageUnavailable indicates the key-value substrate cannot be opened
	StorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	// StorageWriteFailed indicates a write to the substrate was rejected
	StorageWriteFailed ErrorCode = "STORAGE_WRITE_FAILED"
	// ParseFailed indicates stored or imported data could not be decoded
	ParseFailed ErrorCode = "PARSE_FAILED"
	// ImportInvalid indicates an import document has the wrong shape
	ImportInvalid ErrorCode = "IMPORT_INVALID"
	// BackupMissing indicates a restore was requested without a backup
	BackupMissing ErrorCode = "BACKUP_MISSING"
	// ProtocolNotFound indicates no protocol exists under the given id
	ProtocolNotFound ErrorCode = "PROTOCOL_NOT_FOUND"
	// ValidationFailed indicates a protocol failed the rule engine
	ValidationFailed ErrorCode = "VALIDATION_FAILED"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// TcaError represents a tool error with code and message
type TcaError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // underlying error, not exported to JSON
}

// New creates a new TcaError
func New(code ErrorCode, message string, cause error) *TcaError {
	return &TcaError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *TcaError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *TcaError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *TcaError) WithDetails(details interface{}) *TcaError {
	e.Details = details
	return e
}

// SuggestedActions maps error codes to recovery hints shown by the CLI
var SuggestedActions = map[ErrorCode]string{
	StorageUnavailable: "check that the data directory is writable; the session continues in memory only",
	StorageWriteFailed: "free up disk space or check permissions, then save again",
	BackupMissing:      "run 'tca backup' after the next save to create one",
	ImportInvalid:      "verify the file is a tca export document with a 'protocols' list",
	ProtocolNotFound:   "run 'tca list' to see stored protocol ids",
}

// SuggestedAction returns the recovery hint for a code, if any
func SuggestedAction(code ErrorCode) string {
	return SuggestedActions[code]
}
