package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new ShellError with the context field added.
// Existing context fields are preserved.
//
// If err is not a ShellError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "File not found")
//	err = errors.WithContext(err, "path", `\DOCUMENTS\A.TXT`)
func WithContext(err error, key string, value interface{}) ShellError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a ShellError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) ShellError {
	if err == nil {
		return nil
	}

	var shellErr ShellError
	if !errors.As(err, &shellErr) {
		shellErr = &shellError{
			code:           CodeUnknown,
			classification: getDefaultClassification(CodeUnknown),
			message:        err.Error(),
			cause:          err,
		}
	}

	newContext := make(map[string]interface{})
	for k, v := range shellErr.Context() {
		newContext[k] = v
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &shellError{
		code:           shellErr.Code(),
		classification: shellErr.Classification(),
		message:        shellErr.Message(),
		context:        newContext,
		cause:          shellErr.Unwrap(),
	}
}

// WithClassification overrides the classification of an error.
//
// If err is not a ShellError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	// A seed import collision is a user error inside a session but
//	// fatal at boot.
//	err = errors.WithClassification(err, errors.ClassificationFatal)
func WithClassification(err error, classification ErrorClassification) ShellError {
	if err == nil {
		return nil
	}

	var shellErr ShellError
	if !errors.As(err, &shellErr) {
		return &shellError{
			code:           CodeUnknown,
			classification: classification,
			message:        err.Error(),
			cause:          err,
		}
	}

	return &shellError{
		code:           shellErr.Code(),
		classification: classification,
		message:        shellErr.Message(),
		context:        shellErr.Context(),
		cause:          shellErr.Unwrap(),
	}
}
