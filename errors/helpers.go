package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost ShellError in err's chain.
// Returns CodeUnknown if the error is nil or not a ShellError.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle not found
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var shellErr ShellError
	if stderrors.As(err, &shellErr) {
		return shellErr.Code()
	}

	return CodeUnknown
}

// HasCode reports whether any ShellError in err's chain carries code.
// Unlike GetCode it looks past the outermost error, so a store failure
// wrapped with a command-level message still answers for the store code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if shellErr, ok := err.(ShellError); ok && shellErr.Code() == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationUser for nil and non-ShellError errors.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationUser
	}

	var shellErr ShellError
	if stderrors.As(err, &shellErr) {
		return shellErr.Classification()
	}

	return ClassificationUser
}

// IsFatal returns true if the error is classified as fatal.
func IsFatal(err error) bool {
	return GetClassification(err).IsFatal()
}

// GetMessage returns the user-facing message of the outermost ShellError,
// or err.Error() for any other error. Returns "" for nil.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var shellErr ShellError
	if stderrors.As(err, &shellErr) {
		return shellErr.Message()
	}

	return err.Error()
}
