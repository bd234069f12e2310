package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is a ShellError, its classification is preserved.
// Otherwise, the default classification for the error code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := s.store.Copy(src, dst); err != nil {
//	    return errors.Wrap(err, errors.GetCode(err), "Copy failed")
//	}
func Wrap(err error, code ErrorCode, message string) ShellError {
	if err == nil {
		return nil
	}

	return &shellError{
		code:           code,
		classification: inheritClassification(err, code),
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) ShellError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeConfigLoadFailed, "failed to read config", map[string]interface{}{
//	    "file_path": path,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) ShellError {
	if err == nil {
		return nil
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return &shellError{
		code:           code,
		classification: inheritClassification(err, code),
		message:        message,
		context:        contextCopy,
		cause:          err,
	}
}

func inheritClassification(err error, code ErrorCode) ErrorClassification {
	var shellErr ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Classification()
	}
	return getDefaultClassification(code)
}
