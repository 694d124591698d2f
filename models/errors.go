package models

import "fmt"

// Error codes used in API responses and internal error handling.
const (
	ErrCodeTimeout      = "ANALYSIS_TIMEOUT"
	ErrCodeNavigation   = "NAVIGATION_FAILED"
	ErrCodeBrowserCrash = "BROWSER_CRASH"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeInternal     = "INTERNAL_ERROR"

	// Correction-oracle error codes. A speller failure degrades that
	// source to an empty correction list; these codes only surface in logs.
	ErrCodeSpeller     = "SPELLER_FAILURE"
	ErrCodeSpellerAuth = "SPELLER_AUTH_FAILURE"

	// External performance-audit tool failures.
	ErrCodeAuditTool = "AUDIT_TOOL_FAILURE"
)

// ErrorDetail is the structured error in API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AuditError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type AuditError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *AuditError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AuditError) Unwrap() error {
	return e.Err
}

// NewAuditError creates a new AuditError.
func NewAuditError(code, message string, err error) *AuditError {
	return &AuditError{Code: code, Message: message, Err: err}
}

// ToDetail converts an internal error to an API-facing ErrorDetail.
func (e *AuditError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: e.Code, Message: e.Message}
}
