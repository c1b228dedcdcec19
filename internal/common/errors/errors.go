// Package errors provides the standardized error taxonomy for the engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Fatal to a turn: no meaningful filtering is possible without the catalog.
	ErrCodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"

	// Recovered locally: the conversation turn still completes.
	ErrCodeConversationLogAppendFailed ErrorCode = "CONVERSATION_LOG_APPEND_FAILED"
	ErrCodeSessionLoadFailed           ErrorCode = "SESSION_LOAD_FAILED"
	ErrCodeSessionSaveFailed           ErrorCode = "SESSION_SAVE_FAILED"

	// Substituted with empty signals inside the interpreter; never propagates.
	ErrCodeMalformedUtterance ErrorCode = "MALFORMED_UTTERANCE"

	ErrCodeSeedValidationFailed ErrorCode = "SEED_VALIDATION_FAILED"
)

// StandardError represents a structured application error.
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

// NewCatalogUnavailableError creates the retryable fatal error for a turn
// whose catalog snapshot could not be read.
func NewCatalogUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogUnavailable,
		Message:   "Product catalog store unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewConversationLogAppendError creates the non-fatal log append error.
func NewConversationLogAppendError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeConversationLogAppendFailed,
		Message:   "Conversation log append failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionLoadError creates a retryable session store read error.
func NewSessionLoadError(conversationID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionLoadFailed,
		Message:   "Conversation state load failed",
		Details:   fmt.Sprintf("conversationId: %s, error: %s", conversationID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionSaveError creates a retryable session store write error.
func NewSessionSaveError(conversationID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionSaveFailed,
		Message:   "Conversation state save failed",
		Details:   fmt.Sprintf("conversationId: %s, error: %s", conversationID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSeedValidationError creates a non-retryable catalog seed file error.
func NewSeedValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSeedValidationFailed,
		Message:   "Catalog seed file failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf extracts the ErrorCode from an error chain, or "" when the chain
// carries no StandardError.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsRetryable reports whether the error chain carries a retryable
// StandardError.
func IsRetryable(err error) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Retryable
	}
	return false
}
