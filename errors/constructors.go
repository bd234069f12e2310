package errors

import "fmt"

// New creates a new ShellError with the given code and message.
// The error classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "Directory not found: DOCS")
func New(code ErrorCode, message string) ShellError {
	return &shellError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new ShellError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeCapacityExceeded, "path too long: %d characters (max %d)", len(p), max)
func Newf(code ErrorCode, format string, args ...interface{}) ShellError {
	return &shellError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        fmt.Sprintf(format, args...),
	}
}
